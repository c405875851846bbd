package main

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	errPollNotFound   = errors.New("poll not found")
	errChoiceNotFound = errors.New("choice not found")
)

// Choice is one votable option of a poll.
type Choice struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll is a question with its choices.
type Poll struct {
	ID       int       `json:"id"`
	Question string    `json:"question"`
	PubDate  time.Time `json:"pub_date"`
	Choices  []Choice  `json:"choices"`
}

// PollStore is an in-memory poll collection. Reads vastly outnumber writes,
// so a RWMutex is enough. List and Get hand out copies so no pointer into
// the store escapes the lock.
type PollStore struct {
	mu    sync.RWMutex
	polls []*Poll
}

// clone returns a copy of the poll with its own Choices slice.
func (p *Poll) clone() *Poll {
	cp := *p
	cp.Choices = make([]Choice, len(p.Choices))
	copy(cp.Choices, p.Choices)
	return &cp
}

// NewPollStore returns a store seeded with a couple of demo polls.
func NewPollStore() *PollStore {
	now := time.Now()
	return &PollStore{
		polls: []*Poll{
			{
				ID:       1,
				Question: "Which routing style do you prefer?",
				PubDate:  now,
				Choices: []Choice{
					{ID: 1, Text: "Ordered table, first match wins"},
					{ID: 2, Text: "Trie lookup"},
					{ID: 3, Text: "Regex list"},
				},
			},
			{
				ID:       2,
				Question: "Tabs or spaces?",
				PubDate:  now,
				Choices: []Choice{
					{ID: 1, Text: "Tabs"},
					{ID: 2, Text: "Spaces"},
				},
			},
		},
	}
}

// List returns all polls, newest first.
func (s *PollStore) List() []*Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Poll, len(s.polls))
	for i, p := range s.polls {
		out[i] = p.clone()
	}
	return out
}

// Get returns a copy of the poll with the given ID.
func (s *PollStore) Get(id int) (*Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.polls {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", errPollNotFound, id)
}

// Vote increments the vote count of a choice.
func (s *PollStore) Vote(pollID, choiceID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.polls {
		if p.ID != pollID {
			continue
		}
		for i := range p.Choices {
			if p.Choices[i].ID == choiceID {
				p.Choices[i].Votes++
				return nil
			}
		}
		return fmt.Errorf("%w: %d", errChoiceNotFound, choiceID)
	}
	return fmt.Errorf("%w: %d", errPollNotFound, pollID)
}
