// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
)

var errWriteFailed = errors.New("write failed")

type favKey struct {
	userID string
	filmID int64
}

// fakeStore is an in-memory Store. failWrites makes like writes fail;
// likeGate, when set, blocks AddLike until it is closed.
type fakeStore struct {
	mu sync.Mutex

	films     map[int64]bool
	favorites map[favKey]bool
	watchlist map[favKey]*models.WatchlistEntry
	comments  map[int64]*models.Comment
	likes     map[likeKey]bool
	nextID    int64

	failWrites bool
	likeGate   chan struct{}
	likeWrites int
}

func newFakeStore(filmIDs ...int64) *fakeStore {
	s := &fakeStore{
		films:     map[int64]bool{},
		favorites: map[favKey]bool{},
		watchlist: map[favKey]*models.WatchlistEntry{},
		comments:  map[int64]*models.Comment{},
		likes:     map[likeKey]bool{},
	}
	for _, id := range filmIDs {
		s.films[id] = true
	}
	return s
}

func (s *fakeStore) GetFilm(_ context.Context, id int64) (*models.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.films[id] {
		return nil, database.ErrNotFound
	}
	return &models.Film{ID: id}, nil
}

func (s *fakeStore) IsFavorite(_ context.Context, userID string, filmID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[favKey{userID, filmID}], nil
}

func (s *fakeStore) AddFavorite(_ context.Context, userID string, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[favKey{userID, filmID}] = true
	return nil
}

func (s *fakeStore) RemoveFavorite(_ context.Context, userID string, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites, favKey{userID, filmID})
	return nil
}

func (s *fakeStore) GetWatchlistEntry(_ context.Context, userID string, filmID int64) (*models.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.watchlist[favKey{userID, filmID}]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *fakeStore) UpsertWatchlistEntry(_ context.Context, userID string, filmID int64, status models.WatchStatus) (*models.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &models.WatchlistEntry{UserID: userID, FilmID: filmID, Status: status, UpdatedAt: time.Now()}
	if status == models.WatchStatusWatched {
		now := time.Now()
		e.WatchedDate = &now
	}
	s.watchlist[favKey{userID, filmID}] = e
	cp := *e
	return &cp, nil
}

func (s *fakeStore) DeleteWatchlistEntry(_ context.Context, userID string, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watchlist, favKey{userID, filmID})
	return nil
}

func (s *fakeStore) GetComment(_ context.Context, id int64, _ string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *fakeStore) CreateComment(_ context.Context, filmID int64, userID string, in *models.CommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.films[filmID] {
		return nil, database.ErrNotFound
	}
	s.nextID++
	c := &models.Comment{ID: s.nextID, FilmID: filmID, UserID: userID, Text: in.Text, Rating: in.Rating}
	s.comments[c.ID] = c
	cp := *c
	return &cp, nil
}

func (s *fakeStore) UpdateComment(_ context.Context, id int64, in *models.CommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	c.Text, c.Rating = in.Text, in.Rating
	cp := *c
	return &cp, nil
}

func (s *fakeStore) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.comments, id)
	for k := range s.likes {
		if k.commentID == id {
			delete(s.likes, k)
		}
	}
	return nil
}

func (s *fakeStore) CommentExists(_ context.Context, commentID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.comments[commentID]
	return ok, nil
}

func (s *fakeStore) HasLiked(_ context.Context, commentID int64, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[likeKey{commentID, userID}], nil
}

func (s *fakeStore) AddLike(_ context.Context, commentID int64, userID string) error {
	s.mu.Lock()
	gate := s.likeGate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.likeWrites++
	if s.failWrites {
		return errWriteFailed
	}
	s.likes[likeKey{commentID, userID}] = true
	return nil
}

func (s *fakeStore) RemoveLike(_ context.Context, commentID int64, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likeWrites++
	if s.failWrites {
		return errWriteFailed
	}
	delete(s.likes, likeKey{commentID, userID})
	return nil
}

func (s *fakeStore) CountLikes(_ context.Context, commentID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.likes {
		if k.commentID == commentID {
			n++
		}
	}
	return n, nil
}

// recorder captures broadcast events.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) BroadcastJSON(messageType string, _ interface{}) {
	r.mu.Lock()
	r.events = append(r.events, messageType)
	r.mu.Unlock()
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}
