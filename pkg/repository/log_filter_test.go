package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLogFilterWhere(t *testing.T) {
	babyID := uuid.New()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	tests := []struct {
		name       string
		filter     LogFilter
		wantClause string
		wantArgs   []any
	}{
		{
			"empty filter",
			LogFilter{},
			" ORDER BY time DESC LIMIT $2",
			[]any{defaultLogLimit},
		},
		{
			"baby only",
			LogFilter{BabyID: &babyID},
			" AND baby_id = $2 ORDER BY time DESC LIMIT $3",
			[]any{babyID, defaultLogLimit},
		},
		{
			"full filter",
			LogFilter{BabyID: &babyID, From: &from, To: &to, Limit: 25},
			" AND baby_id = $2 AND time >= $3 AND time <= $4 ORDER BY time DESC LIMIT $5",
			[]any{babyID, from, to, 25},
		},
		{
			"range only",
			LogFilter{From: &from, To: &to},
			" AND time >= $2 AND time <= $3 ORDER BY time DESC LIMIT $4",
			[]any{from, to, defaultLogLimit},
		},
		{
			"negative limit falls back",
			LogFilter{Limit: -5},
			" ORDER BY time DESC LIMIT $2",
			[]any{defaultLogLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.where("time")
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestLogFilterWhereTimeColumn(t *testing.T) {
	from := time.Now()
	clause, _ := LogFilter{From: &from}.where("start_time")
	want := " AND start_time >= $2 ORDER BY start_time DESC LIMIT $3"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
}
