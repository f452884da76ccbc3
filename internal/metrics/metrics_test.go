// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("insert", "comments", "constraint"))

	RecordDBQuery("insert", "comments", 5*time.Millisecond, nil)
	RecordDBQuery("insert", "comments", 5*time.Millisecond, errors.New("Constraint Error: duplicate key"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("insert", "comments", "constraint"))
	if after-before != 1 {
		t.Errorf("constraint errors delta = %v, want 1", after-before)
	}
}

func TestClassifyDBError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{context.DeadlineExceeded, "timeout"},
		{fmt.Errorf("query: %w", context.Canceled), "canceled"},
		{errors.New("UNIQUE constraint failed"), "constraint"},
		{errors.New("record not found"), "not_found"},
		{errors.New("Conflict on key"), "conflict"},
		{errors.New("disk full"), "other"},
	}
	for _, tt := range tests {
		if got := classifyDBError(tt.err); got != tt.want {
			t.Errorf("classifyDBError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/films/{id}", "404")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/films/{id}", 404, 10*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("request counter delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("active requests delta = %v, want 1", got)
	}
	TrackActiveRequest(false)
}

func TestRecordImport(t *testing.T) {
	imported := testutil.ToFloat64(TMDBImportsTotal.WithLabelValues("imported"))
	skipped := testutil.ToFloat64(TMDBImportsTotal.WithLabelValues("skipped"))

	RecordImport(3, 2, 0)

	if got := testutil.ToFloat64(TMDBImportsTotal.WithLabelValues("imported")) - imported; got != 3 {
		t.Errorf("imported delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(TMDBImportsTotal.WithLabelValues("skipped")) - skipped; got != 2 {
		t.Errorf("skipped delta = %v, want 2", got)
	}
}

func TestDomainCounters(t *testing.T) {
	liked := testutil.ToFloat64(LikeTogglesTotal.WithLabelValues("liked"))
	created := testutil.ToFloat64(CommentsTotal.WithLabelValues("create"))

	RecordLikeToggle("liked")
	RecordCommentMutation("create")

	if testutil.ToFloat64(LikeTogglesTotal.WithLabelValues("liked"))-liked != 1 {
		t.Error("like toggle not counted")
	}
	if testutil.ToFloat64(CommentsTotal.WithLabelValues("create"))-created != 1 {
		t.Error("comment create not counted")
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.0.0", "go1.24")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", "go1.24")); got != 1 {
		t.Errorf("app info = %v, want 1", got)
	}
}
