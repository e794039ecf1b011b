package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AdministratorRights holds the rights every ChatAdministratorRights record
// must carry.
type AdministratorRights struct {
	IsAnonymous         bool
	CanManageChat       bool
	CanDeleteMessages   bool
	CanManageVideoChats bool
	CanRestrictMembers  bool
	CanPromoteMembers   bool
	CanChangeInfo       bool
	CanInviteUsers      bool
	CanPostStories      bool
	CanEditStories      bool
	CanDeleteStories    bool
}

type ChatAdministratorRights struct {
	base
	rights AdministratorRights

	// channels only
	canPostMessages Optional[bool]
	canEditMessages Optional[bool]

	// groups and supergroups only
	canPinMessages  Optional[bool]
	canManageTopics Optional[bool]
}

type AdministratorRightsOption func(r *ChatAdministratorRights)

func WithCanPostMessages(value bool) AdministratorRightsOption {
	return func(r *ChatAdministratorRights) {
		r.canPostMessages = Some(value)
	}
}

func WithCanEditMessages(value bool) AdministratorRightsOption {
	return func(r *ChatAdministratorRights) {
		r.canEditMessages = Some(value)
	}
}

func WithCanPinMessages(value bool) AdministratorRightsOption {
	return func(r *ChatAdministratorRights) {
		r.canPinMessages = Some(value)
	}
}

func WithCanManageTopics(value bool) AdministratorRightsOption {
	return func(r *ChatAdministratorRights) {
		r.canManageTopics = Some(value)
	}
}

func NewChatAdministratorRights(rights AdministratorRights, opts ...AdministratorRightsOption) *ChatAdministratorRights {
	r := &ChatAdministratorRights{
		base:   newBase(nil, nil),
		rights: rights,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// AllAdministratorRights returns rights with every flag, optional ones
// included, set to true.
func AllAdministratorRights() *ChatAdministratorRights {
	return newUniformAdministratorRights(true)
}

// NoAdministratorRights returns rights with every flag, optional ones
// included, set to false.
func NoAdministratorRights() *ChatAdministratorRights {
	return newUniformAdministratorRights(false)
}

func newUniformAdministratorRights(value bool) *ChatAdministratorRights {
	return NewChatAdministratorRights(
		AdministratorRights{
			IsAnonymous:         value,
			CanManageChat:       value,
			CanDeleteMessages:   value,
			CanManageVideoChats: value,
			CanRestrictMembers:  value,
			CanPromoteMembers:   value,
			CanChangeInfo:       value,
			CanInviteUsers:      value,
			CanPostStories:      value,
			CanEditStories:      value,
			CanDeleteStories:    value,
		},
		WithCanPostMessages(value),
		WithCanEditMessages(value),
		WithCanPinMessages(value),
		WithCanManageTopics(value),
	)
}

func ChatAdministratorRightsFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*ChatAdministratorRights, error) {
	r := newDictReader(data, bot)

	rights := &ChatAdministratorRights{
		rights: AdministratorRights{
			IsAnonymous:         r.readBool("is_anonymous").ValueOr(false),
			CanManageChat:       r.readBool("can_manage_chat").ValueOr(false),
			CanDeleteMessages:   r.readBool("can_delete_messages").ValueOr(false),
			CanManageVideoChats: r.readBool("can_manage_video_chats").ValueOr(false),
			CanRestrictMembers:  r.readBool("can_restrict_members").ValueOr(false),
			CanPromoteMembers:   r.readBool("can_promote_members").ValueOr(false),
			CanChangeInfo:       r.readBool("can_change_info").ValueOr(false),
			CanInviteUsers:      r.readBool("can_invite_users").ValueOr(false),
			CanPostStories:      r.readBool("can_post_stories").ValueOr(false),
			CanEditStories:      r.readBool("can_edit_stories").ValueOr(false),
			CanDeleteStories:    r.readBool("can_delete_stories").ValueOr(false),
		},
		canPostMessages: r.readBool("can_post_messages"),
		canEditMessages: r.readBool("can_edit_messages"),
		canPinMessages:  r.readBool("can_pin_messages"),
		canManageTopics: r.readBool("can_manage_topics"),
	}

	if r.err != nil {
		return nil, r.err
	}

	rights.base = newBase(r.apiKwargs(), bot)

	return rights, nil
}

func (r *ChatAdministratorRights) Rights() AdministratorRights {
	return r.rights
}

func (r *ChatAdministratorRights) CanPostMessages() Optional[bool] {
	return r.canPostMessages
}

func (r *ChatAdministratorRights) CanEditMessages() Optional[bool] {
	return r.canEditMessages
}

func (r *ChatAdministratorRights) CanPinMessages() Optional[bool] {
	return r.canPinMessages
}

func (r *ChatAdministratorRights) CanManageTopics() Optional[bool] {
	return r.canManageTopics
}

func (r *ChatAdministratorRights) Kind() Kind {
	return KindChatAdministratorRights
}

func (r *ChatAdministratorRights) ToDict() map[string]any {
	dict := map[string]any{
		"is_anonymous":           r.rights.IsAnonymous,
		"can_manage_chat":        r.rights.CanManageChat,
		"can_delete_messages":    r.rights.CanDeleteMessages,
		"can_manage_video_chats": r.rights.CanManageVideoChats,
		"can_restrict_members":   r.rights.CanRestrictMembers,
		"can_promote_members":    r.rights.CanPromoteMembers,
		"can_change_info":        r.rights.CanChangeInfo,
		"can_invite_users":       r.rights.CanInviteUsers,
		"can_post_stories":       r.rights.CanPostStories,
		"can_edit_stories":       r.rights.CanEditStories,
		"can_delete_stories":     r.rights.CanDeleteStories,
	}

	putOptional(dict, "can_post_messages", r.canPostMessages)
	putOptional(dict, "can_edit_messages", r.canEditMessages)
	putOptional(dict, "can_pin_messages", r.canPinMessages)
	putOptional(dict, "can_manage_topics", r.canManageTopics)

	return dict
}

func (r *ChatAdministratorRights) Equal(other Object) bool {
	if !sameKind(r, other) {
		return false
	}

	o, ok := other.(*ChatAdministratorRights)

	return ok && o != nil &&
		r.rights == o.rights &&
		r.canPostMessages == o.canPostMessages &&
		r.canEditMessages == o.canEditMessages &&
		r.canPinMessages == o.canPinMessages &&
		r.canManageTopics == o.canManageTopics
}

func (r *ChatAdministratorRights) Hash() uint64 {
	h := newHasher(r.Kind())

	for _, flag := range []bool{
		r.rights.IsAnonymous,
		r.rights.CanManageChat,
		r.rights.CanDeleteMessages,
		r.rights.CanManageVideoChats,
		r.rights.CanRestrictMembers,
		r.rights.CanPromoteMembers,
		r.rights.CanChangeInfo,
		r.rights.CanInviteUsers,
		r.rights.CanPostStories,
		r.rights.CanEditStories,
		r.rights.CanDeleteStories,
	} {
		h.writeBool(flag)
	}

	h.writeOptionalBool(r.canPostMessages)
	h.writeOptionalBool(r.canEditMessages)
	h.writeOptionalBool(r.canPinMessages)
	h.writeOptionalBool(r.canManageTopics)

	return h.sum()
}

func (r *ChatAdministratorRights) MarshalJSON() ([]byte, error) {
	return marshalObject(r)
}

func (r *ChatAdministratorRights) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := ChatAdministratorRightsFromDict(dict, nil)

	if err != nil {
		return err
	}

	*r = *parsed

	return nil
}
