// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gclookup/gclookup/internal/genesys"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adaID     = "11111111-1111-4111-8111-111111111111"
	graceID   = "22222222-2222-4222-8222-222222222222"
	missingID = "33333333-3333-4333-8333-333333333333"
	salesID   = "44444444-4444-4444-8444-444444444444"
	convID    = "55555555-5555-4555-8555-555555555555"
)

type fakeAPI struct {
	users  map[string]genesys.User
	queues map[string]genesys.Queue
	convs  map[string]genesys.Conversation

	searchErr error
	calls     []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users: map[string]genesys.User{
			adaID:   {ID: adaID, Name: "Ada Lovelace", Email: "ada@example.com"},
			graceID: {ID: graceID, Name: "Grace Hopper", Email: "grace@example.com"},
		},
		queues: map[string]genesys.Queue{
			salesID: {ID: salesID, Name: "Sales"},
		},
		convs: map[string]genesys.Conversation{
			convID: {
				ID:        convID,
				StartTime: "2025-03-01T10:00:00.000Z",
				Participants: []genesys.Participant{
					{Purpose: "customer", Name: "Jane", Attributes: map[string]any{"zeta": "last", "account": "42"}},
					{Purpose: "agent"},
				},
			},
		},
	}
}

func notFound(path string) error {
	return &genesys.APIError{Method: "GET", URL: path, StatusCode: 404}
}

func (f *fakeAPI) GetUser(_ context.Context, id string) (*genesys.User, error) {
	f.calls = append(f.calls, "user:"+id)
	u, ok := f.users[id]
	if !ok {
		return nil, notFound("/api/v2/users/" + id)
	}
	return &u, nil
}

func (f *fakeAPI) SearchUsers(_ context.Context, text string) ([]genesys.User, error) {
	f.calls = append(f.calls, "find-users:"+text)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return []genesys.User{f.users[adaID], {ID: "u-x", Name: "Ada Byron"}}, nil
}

func (f *fakeAPI) GetQueue(_ context.Context, id string) (*genesys.Queue, error) {
	f.calls = append(f.calls, "queue:"+id)
	q, ok := f.queues[id]
	if !ok {
		return nil, notFound("/api/v2/routing/queues/" + id)
	}
	return &q, nil
}

func (f *fakeAPI) SearchQueues(_ context.Context, text string) ([]genesys.Queue, error) {
	f.calls = append(f.calls, "find-queues:"+text)
	return []genesys.Queue{{ID: "q1", Name: "Sales EMEA"}, {ID: "q2", Name: "Sales US"}}, nil
}

func (f *fakeAPI) GetConversation(_ context.Context, id string) (*genesys.Conversation, error) {
	f.calls = append(f.calls, "conversation:"+id)
	c, ok := f.convs[id]
	if !ok {
		return nil, notFound("/api/v2/conversations/" + id)
	}
	return &c, nil
}

type recordingSleeper struct {
	slept []time.Duration
}

func (s *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	return nil
}

func newRunner(api API, out *bytes.Buffer, s *recordingSleeper) *Runner {
	return NewRunner(api, Options{Stdout: out, Delay: 250 * time.Millisecond, Sleep: s.sleep})
}

func TestRun_Order(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	var out bytes.Buffer
	r := newRunner(api, &out, &recordingSleeper{})

	err := r.Run(context.Background(), Query{
		QueueName:   "sales",
		UserName:    "ada",
		QueueIDs:    []string{salesID},
		UserIDs:     []string{adaID},
		Interaction: convID,
	})
	require.NoError(t, err)

	want := []string{
		"conversation:" + convID,
		"user:" + adaID,
		"queue:" + salesID,
		"find-users:ada",
		"find-queues:sales",
	}
	if diff := cmp.Diff(want, api.calls); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestUsers_PrintsAndContinuesOnFailure(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	var out bytes.Buffer
	s := &recordingSleeper{}
	r := newRunner(api, &out, s)

	err := r.Run(context.Background(), Query{UserIDs: []string{adaID, missingID, graceID}})
	require.Error(t, err)

	assert.Equal(t, "Getting User(s)\n"+
		"Ada Lovelace (ada@example.com)\n"+
		"Failed to fetch details for user "+missingID+"\n"+
		"Grace Hopper (grace@example.com)\n", out.String())
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond}, s.slept)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1)
	assert.ErrorIs(t, err, genesys.ErrNotFound)

	var idErr *IDError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "user", idErr.Resource)
	assert.Equal(t, missingID, idErr.ID)
	assert.Contains(t, err.Error(), "1 lookup failed")
}

func TestQueues_Format(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	var out bytes.Buffer
	r := newRunner(api, &out, &recordingSleeper{})

	err := r.Run(context.Background(), Query{QueueIDs: []string{salesID, missingID}})
	require.Error(t, err)
	assert.Equal(t, "Getting Queue(s)\n"+
		"Sales : "+salesID+"\n"+
		"Failed to fetch details for queue "+missingID+"\n", out.String())
}

func TestInvalidIDSkipsAPI(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	var out bytes.Buffer
	r := newRunner(api, &out, &recordingSleeper{})

	err := r.Run(context.Background(), Query{UserIDs: []string{"not-a-guid"}, QueueIDs: []string{"42"}})
	require.Error(t, err)
	assert.Empty(t, api.calls)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Contains(t, out.String(), "Failed to fetch details for user not-a-guid\n")
	assert.Contains(t, out.String(), "Failed to fetch details for queue 42\n")

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "2 lookups failed")
}

func TestFindUsersAndQueues(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRunner(newFakeAPI(), &out, &recordingSleeper{})

	require.NoError(t, r.Run(context.Background(), Query{UserName: "ada", QueueName: "sales"}))
	assert.Equal(t, "Finding User(s)\n"+
		"Ada Lovelace, ada@example.com, "+adaID+"\n"+
		"Ada Byron, , u-x\n"+
		"Finding Queue(s)\n"+
		"Sales EMEA, q1\n"+
		"Sales US, q2\n", out.String())
}

func TestSearchFailureStops(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.searchErr = errors.New("boom")
	var out bytes.Buffer
	r := newRunner(api, &out, &recordingSleeper{})

	err := r.Run(context.Background(), Query{UserName: "ada", QueueName: "sales"})
	require.ErrorIs(t, err, api.searchErr)
	assert.NotContains(t, api.calls, "find-queues:sales")
}

func TestInteraction_Format(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRunner(newFakeAPI(), &out, &recordingSleeper{})

	require.NoError(t, r.Run(context.Background(), Query{Interaction: convID}))
	want := banner + "\n" +
		"#  Interaction " + convID + "\n" +
		banner + "\n" +
		"Start Time: 2025-03-01T10:00:00.000Z\n" +
		"customer — Jane\n" +
		"account: 42\n" +
		"zeta: last\n" +
		"agent — UNK\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("interaction output mismatch (-want +got):\n%s", diff)
	}
}

func TestInteraction_MissingFields(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.convs[convID] = genesys.Conversation{ID: convID, Participants: []genesys.Participant{{}}}
	var out bytes.Buffer
	r := newRunner(api, &out, &recordingSleeper{})

	require.NoError(t, r.Interaction(context.Background(), convID))
	assert.Contains(t, out.String(), "Start Time: ??\n")
	assert.Contains(t, out.String(), "UNK — UNK\n")
}

func TestInteraction_FailureStopsRun(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	var out bytes.Buffer
	r := newRunner(api, &out, &recordingSleeper{})

	err := r.Run(context.Background(), Query{Interaction: missingID, UserIDs: []string{adaID}})
	require.ErrorIs(t, err, genesys.ErrNotFound)
	assert.Equal(t, []string{"conversation:" + missingID}, api.calls)
	assert.Empty(t, out.String())

	err = r.Run(context.Background(), Query{Interaction: "bogus"})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestRun_CanceledBetweenIDs(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(api, Options{
		Stdout: &out,
		Delay:  time.Hour,
		Sleep: func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
	})

	err := r.Run(ctx, Query{UserIDs: []string{adaID, graceID}, UserName: "ada"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"user:" + adaID}, api.calls)
}

func TestSleepContext(t *testing.T) {
	t.Parallel()

	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}

func TestConversationURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://apps.usw2.pure.cloud/directory/#/analytics/interactions/"+convID+"/admin/details",
		ConversationURL("usw2.pure.cloud", convID))
}
