package outs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"etcgBot/internal/domain"
	"etcgBot/internal/mocks"
)

func TestMultiSender_RoutesByPlatform(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	telegram := mocks.NewMockOutgoingMessagePort(ctrl)
	twitch := mocks.NewMockOutgoingMessagePort(ctrl)
	msg := domain.OutgoingMessage{Text: "hola", Format: domain.FormatPlain}

	multi := NewMultiSender()
	multi.Register(domain.PlatformTelegram, telegram)
	multi.Register(domain.PlatformTwitch, twitch)

	telegram.EXPECT().SendMessage(ctx, domain.PlatformTelegram, "-1", msg).Return(nil)
	twitch.EXPECT().LeaveConversation(ctx, domain.PlatformTwitch, "#etcg").Return(nil)

	require.NoError(t, multi.SendMessage(ctx, domain.PlatformTelegram, "-1", msg))
	require.NoError(t, multi.LeaveConversation(ctx, domain.PlatformTwitch, "#etcg"))
}

func TestMultiSender_UnknownPlatform(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	telegram := mocks.NewMockOutgoingMessagePort(ctrl)

	multi := NewMultiSender()
	multi.Register(domain.PlatformTelegram, telegram)
	multi.Unregister(domain.PlatformTelegram)

	err := multi.SendMessage(ctx, domain.PlatformTelegram, "-1", domain.OutgoingMessage{})
	require.ErrorIs(t, err, domain.ErrUnknownPlatform)

	err = multi.LeaveConversation(ctx, domain.PlatformTwitch, "#x")
	require.ErrorIs(t, err, domain.ErrUnknownPlatform)

	var nilMulti *MultiSender
	require.ErrorIs(t, nilMulti.SendMessage(ctx, domain.PlatformTelegram, "-1", domain.OutgoingMessage{}), domain.ErrUnknownPlatform)
}

func TestMultiSender_UnregisterKeepsOtherPlatforms(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	telegram := mocks.NewMockOutgoingMessagePort(ctrl)
	twitch := mocks.NewMockOutgoingMessagePort(ctrl)

	multi := NewMultiSender()
	multi.Register(domain.PlatformTelegram, telegram)
	multi.Register(domain.PlatformTwitch, twitch)
	multi.Unregister(domain.PlatformTwitch)

	telegram.EXPECT().LeaveConversation(ctx, domain.PlatformTelegram, "-1").Return(nil)
	twitch.EXPECT().LeaveConversation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, multi.LeaveConversation(ctx, domain.PlatformTelegram, "-1"))
	require.ErrorIs(t, multi.LeaveConversation(ctx, domain.PlatformTwitch, "#etcg"), domain.ErrUnknownPlatform)
}
