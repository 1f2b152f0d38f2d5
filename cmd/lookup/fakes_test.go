// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gclookup/gclookup/internal/config"
	"github.com/gclookup/gclookup/internal/genesys"

	"github.com/charmbracelet/log"
)

const (
	adaID  = "11111111-1111-4111-8111-111111111111"
	convID = "55555555-5555-4555-8555-555555555555"
)

type (
	staticConfig struct {
		cfg   *config.Config
		err   error
		loads int
	}

	fakeClient struct {
		authErr error
		authed  bool
		calls   []string
	}

	fakePrompts struct {
		choice   string
		value    string
		confirm  bool
		answers  map[string]string
		asked    []string
		promptFn func() error
	}

	fakeClipboard struct {
		text string
		err  error
	}
)

func validConfig() *config.Config {
	return &config.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Region:       config.DefaultRegion,
		RequestDelay: 0,
		HTTPTimeout:  time.Second,
	}
}

func (s *staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	cfg := *s.cfg
	return &cfg, nil
}

func (c *fakeClient) Authenticate(_ context.Context, clientID, clientSecret string) (*genesys.Token, error) {
	c.calls = append(c.calls, "auth:"+clientID)
	if c.authErr != nil {
		return nil, c.authErr
	}
	c.authed = true
	return &genesys.Token{AccessToken: "tok"}, nil
}

func (c *fakeClient) GetUser(_ context.Context, id string) (*genesys.User, error) {
	c.calls = append(c.calls, "user:"+id)
	if id != adaID {
		return nil, &genesys.APIError{Method: "GET", URL: "/api/v2/users/" + id, StatusCode: 404}
	}
	return &genesys.User{ID: id, Name: "Ada Lovelace", Email: "ada@example.com"}, nil
}

func (c *fakeClient) SearchUsers(_ context.Context, text string) ([]genesys.User, error) {
	c.calls = append(c.calls, "find-users:"+text)
	return []genesys.User{{ID: adaID, Name: "Ada Lovelace", Email: "ada@example.com"}}, nil
}

func (c *fakeClient) GetQueue(_ context.Context, id string) (*genesys.Queue, error) {
	c.calls = append(c.calls, "queue:"+id)
	return &genesys.Queue{ID: id, Name: "Support"}, nil
}

func (c *fakeClient) SearchQueues(_ context.Context, text string) ([]genesys.Queue, error) {
	c.calls = append(c.calls, "find-queues:"+text)
	return []genesys.Queue{{ID: "q1", Name: "Support EMEA"}}, nil
}

func (c *fakeClient) GetConversation(_ context.Context, id string) (*genesys.Conversation, error) {
	c.calls = append(c.calls, "conversation:"+id)
	if id != convID {
		return nil, &genesys.APIError{Method: "GET", URL: "/api/v2/conversations/" + id, StatusCode: 404}
	}
	return &genesys.Conversation{
		ID:           id,
		StartTime:    "2025-03-01T10:00:00.000Z",
		Participants: []genesys.Participant{{Purpose: "customer", Name: "Jane"}},
	}, nil
}

func (p *fakePrompts) Ask(_ context.Context, q config.Question) (string, error) {
	p.asked = append(p.asked, "ask:"+q.Key)
	return p.answers[q.Key], nil
}

func (p *fakePrompts) Choose(_ context.Context, title string, _ []string) (string, error) {
	p.asked = append(p.asked, "choose:"+title)
	if p.promptFn != nil {
		return "", p.promptFn()
	}
	return p.choice, nil
}

func (p *fakePrompts) Input(_ context.Context, title string) (string, error) {
	p.asked = append(p.asked, "input:"+title)
	return p.value, nil
}

func (p *fakePrompts) Confirm(_ context.Context, title string, def bool) (bool, error) {
	p.asked = append(p.asked, "confirm:"+title)
	if !def {
		return false, errors.New("confirm must default to yes")
	}
	return p.confirm, nil
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// testApp builds an App around fakes. interactive controls TTY detection.
func testApp(cfg config.Provider, client *fakeClient, prompts *fakePrompts, clip *fakeClipboard, interactive bool) *App {
	app := NewApp(Dependencies{
		Config:      cfg,
		NewClient:   func(*config.Config, *log.Logger) APIClient { return client },
		Prompts:     prompts,
		Clipboard:   clip,
		Interactive: func() bool { return interactive },
		Stderr:      io.Discard,
	})
	return app
}
