package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"etcgBot/internal/domain"
	"etcgBot/internal/usecase/markup"
)

const (
	testChatID    = "-1001234"
	allowlistedID = int64(709158714)
)

func newTestRouter(t *testing.T, requireAuth bool) *Router {
	t.Helper()
	set, err := TemplateSetByName(TemplateSetApplication)
	require.NoError(t, err)
	help := HelpText("/", BuiltinCommandCatalog(DefaultKeywords()))
	return NewRouter(help, set, NewAuthorizationPolicy(requireAuth, map[domain.Platform][]int64{
		domain.PlatformTelegram: {allowlistedID},
	}))
}

func senderInfo(name string, id *int64) domain.SenderInfo {
	return domain.SenderInfo{Platform: domain.PlatformTelegram, DisplayName: name, ID: id}
}

func TestRouter_Help(t *testing.T) {
	router := newTestRouter(t, true)
	help := HelpText("/", BuiltinCommandCatalog(DefaultKeywords()))

	for _, sender := range []domain.SenderInfo{
		senderInfo("someone", nil),
		senderInfo("Jan", ptr(allowlistedID)),
		senderInfo("Eve", ptr(int64(42))),
	} {
		plan := router.Route(testChatID, CommandHelp, sender)

		require.Len(t, plan, 1)
		require.Equal(t, domain.ActionSendMessage, plan[0].Kind)
		require.Equal(t, testChatID, plan[0].ChatID)
		require.Equal(t, help, plan[0].Message.Text)
		require.Equal(t, domain.FormatPlain, plan[0].Message.Format)
	}
}

func TestRouter_PrimaryWithoutSender(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, true)

	plan := router.Route(testChatID, CommandPrimary, ResolveSender(domain.Message{ChatID: testChatID}))

	req.Len(plan, 1)
	req.Equal(domain.ActionSendMessage, plan[0].Kind)
	req.Equal(domain.FormatMarkdownV2, plan[0].Message.Format)
	req.True(plan[0].Message.DisableLinkPreview)
	req.Contains(plan[0].Message.Text, "actions made by someone\\.")
	req.Contains(plan[0].Message.Text, "[this form](https://docs.google.com/")
	req.NotContains(plan[0].Message.Text, SenderPlaceholder)
}

func TestRouter_FarewellAuthorized(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, true)
	msg := domain.Message{
		Platform: domain.PlatformTelegram,
		ChatID:   testChatID,
		Sender:   &domain.Sender{ID: allowlistedID, FirstName: "Jan", LastName: "Kowalski"},
	}

	plan := router.Route(testChatID, CommandFarewell, ResolveSender(msg))

	req.Len(plan, 2)
	req.Equal(domain.ActionSendMessage, plan[0].Kind)
	req.Equal(domain.FormatMarkdownV2, plan[0].Message.Format)
	req.Contains(plan[0].Message.Text, "Time to leave again")
	req.Contains(plan[0].Message.Text, "Jan Kowalski")
	req.Equal(domain.LeaveConversation(testChatID), plan[1])
	req.True(plan.Leaves())
}

func TestRouter_FarewellUnauthorized(t *testing.T) {
	router := newTestRouter(t, true)

	tests := []struct {
		name   string
		sender *domain.Sender
		want   string
	}{
		{"other identity", &domain.Sender{ID: 42, FirstName: "Jan", LastName: "Kowalski"}, "Jan Kowalski"},
		{"no sender", nil, "someone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			plan := router.Route(testChatID, CommandFarewell, ResolveSender(domain.Message{Sender: tt.sender}))

			req.Len(plan, 1)
			req.False(plan.Leaves())
			req.Equal(domain.ActionSendMessage, plan[0].Kind)
			req.True(plan[0].Message.DisableLinkPreview)
			req.Contains(plan[0].Message.Text, "not allowed to use this command")
			req.Contains(plan[0].Message.Text, tt.want)
		})
	}
}

func TestRouter_FarewellSameIDOtherPlatform(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, true)
	msg := domain.Message{
		Platform: domain.PlatformTwitch,
		ChatID:   "somechannel",
		Sender:   &domain.Sender{ID: allowlistedID, FirstName: "impostor"},
	}

	plan := router.Route(msg.ChatID, CommandFarewell, ResolveSender(msg))

	req.Len(plan, 1)
	req.False(plan.Leaves())
	req.Contains(plan[0].Message.Text, "not allowed to use this command")
}

func TestRouter_FarewellWithoutAuthorizationGate(t *testing.T) {
	router := newTestRouter(t, false)

	plan := router.Route(testChatID, CommandFarewell, senderInfo("someone", nil))

	require.Len(t, plan, 2)
	require.Equal(t, domain.ActionLeaveConversation, plan[1].Kind)
}

func TestRouter_EscapesEveryReservedCharacter(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, true)
	name := "_*[]()~`>#+-=|{}.!\\"

	plan := router.Route(testChatID, CommandPrimary, senderInfo(name, nil))

	req.Len(plan, 1)
	text := plan[0].Message.Text
	req.Contains(text, markup.EscapeMarkdownV2(name))
	req.True(strings.Contains(markup.PlainText(text), "actions made by "+name+"."))
}

func TestRouter_UnknownCommand(t *testing.T) {
	router := newTestRouter(t, true)
	require.Empty(t, router.Route(testChatID, Command(99), senderInfo("x", nil)))
}
