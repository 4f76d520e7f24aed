package standup

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"standup-bot/internal/database"
	"standup-bot/internal/domain/contract"
	"standup-bot/internal/domain/entity"
	"standup-bot/internal/roster"
	"standup-bot/internal/vacation"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
)

const (
	testChannelID = "C123456789"
	testToday     = "2026-08-31"
)

type postedMessage struct {
	Channel  string
	Text     string
	ThreadTS string
}

// fakeSlackClient records posted messages and reactions. Message options
// are decoded through slack.UnsafeApplyMsgOptions so assertions can see
// the rendered text and thread timestamp.
type fakeSlackClient struct {
	mu        sync.Mutex
	posts     []postedMessage
	reactions []string
	postErr   error
	reactErr  error
	tsCounter int
}

func (f *fakeSlackClient) PostMessage(channelID string, options ...slack.MsgOption) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.postErr != nil {
		return "", "", f.postErr
	}

	_, values, err := slack.UnsafeApplyMsgOptions("xoxb-test", channelID, "https://slack.test/api/", options...)
	if err != nil {
		return "", "", err
	}

	f.posts = append(f.posts, postedMessage{
		Channel:  channelID,
		Text:     values.Get("text"),
		ThreadTS: values.Get("thread_ts"),
	})
	f.tsCounter++
	return channelID, fmt.Sprintf("1756600000.%06d", f.tsCounter), nil
}

func (f *fakeSlackClient) AddReaction(name string, item slack.ItemRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.reactErr != nil {
		return f.reactErr
	}
	f.reactions = append(f.reactions, name+"@"+item.Timestamp)
	return nil
}

func (f *fakeSlackClient) postedMessages() []postedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]postedMessage(nil), f.posts...)
}

func (f *fakeSlackClient) addedReactions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.reactions...)
}

type fakeResolver struct {
	result vacation.Result
	calls  int
}

func (f *fakeResolver) AwayToday(ctx context.Context, date string) vacation.Result {
	f.calls++
	return f.result
}

type failingStateRepo struct{ err error }

func (r failingStateRepo) Set(key, value string) error { return r.err }

func (r failingStateRepo) Get(key string) (string, error) { return "", r.err }

type failingReportRepo struct{ err error }

func (r failingReportRepo) Create(report *entity.Report) error { return r.err }

func (r failingReportRepo) GetByUserAndDate(slackUserID, date string) (*entity.Report, error) {
	return nil, r.err
}

func (r failingReportRepo) UpdateText(slackUserID, date, rawText string) error { return r.err }

func (r failingReportRepo) ReportedUserIDs(date string) ([]string, error) { return nil, r.err }

type fakeDataManager struct {
	state  contract.StateRepo
	report contract.ReportRepo
}

func (m fakeDataManager) State() contract.StateRepo { return m.state }

func (m fakeDataManager) Report() contract.ReportRepo { return m.report }

// newTestService wires a Service against an in-memory database, a recording
// Slack fake and a canned absence resolver. The roster has three tracked
// members and one exempt owner; the clock is pinned to testToday.
func newTestService(t *testing.T) (*Service, *fakeSlackClient, *fakeResolver, contract.DataManager) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })
	dm := database.NewInstance(db)

	team, err := roster.New([]entity.Member{
		{SlackUserID: "U111", DisplayName: "Alice Almeida"},
		{SlackUserID: "U222", DisplayName: "Bob Brown"},
		{SlackUserID: "U333", DisplayName: "Carol Costa"},
		{SlackUserID: "U999", DisplayName: "Olivia Owner", Exempt: true},
	})
	require.NoError(t, err)

	client := &fakeSlackClient{}
	resolver := &fakeResolver{result: vacation.Resolved(nil)}

	svc := New(client, dm, team, resolver, testChannelID)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	}

	return svc, client, resolver, dm
}

func replyInThread(userID, text, ts, threadTS string) entity.ChatMessage {
	return entity.ChatMessage{
		UserID:          userID,
		Text:            text,
		Timestamp:       ts,
		ThreadTimestamp: threadTS,
	}
}
