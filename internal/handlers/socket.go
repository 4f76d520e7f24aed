package handlers

import (
	"context"

	"standup-bot/internal/domain/entity"
	"standup-bot/internal/logger"
	"standup-bot/internal/standup"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

// SocketHandler runs the Slack Socket Mode connection and feeds message
// events into the standup service.
type SocketHandler struct {
	client  *socketmode.Client
	service *standup.Service
}

func NewSocket(api *slack.Client, service *standup.Service) *SocketHandler {
	return &SocketHandler{
		client:  socketmode.New(api),
		service: service,
	}
}

// Run starts the event consumer and the Socket Mode connection. It blocks
// until the context is cancelled or the connection dies.
func (h *SocketHandler) Run(ctx context.Context) error {
	go h.consumeEvents(ctx)
	return h.client.RunContext(ctx)
}

func (h *SocketHandler) consumeEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-h.client.Events:
			if !ok {
				return
			}
			h.handleEvent(ctx, evt)
		}
	}
}

func (h *SocketHandler) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		logger.Log.Info("Connecting to Slack via Socket Mode...")
	case socketmode.EventTypeConnectionError:
		logger.Log.Warn("Slack Socket Mode connection error, retrying")
	case socketmode.EventTypeConnected:
		logger.Log.Info("Connected to Slack via Socket Mode")
	case socketmode.EventTypeEventsAPI:
		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		// Ack first: Slack redelivers unacked events, and a redelivered
		// reply would otherwise be merged into the report twice.
		if evt.Request != nil {
			h.client.Ack(*evt.Request)
		}
		h.handleEventsAPI(ctx, apiEvent)
	}
}

func (h *SocketHandler) handleEventsAPI(ctx context.Context, apiEvent slackevents.EventsAPIEvent) {
	if apiEvent.Type != slackevents.CallbackEvent {
		return
	}

	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		h.service.HandleMessage(ctx, messageFromEvent(ev))
	}
}

func messageFromEvent(ev *slackevents.MessageEvent) entity.ChatMessage {
	return entity.ChatMessage{
		UserID:          ev.User,
		Text:            ev.Text,
		Timestamp:       ev.TimeStamp,
		ThreadTimestamp: ev.ThreadTimeStamp,
		IsBot:           ev.BotID != "" || ev.SubType == "bot_message",
	}
}
