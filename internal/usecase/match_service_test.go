package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/infootball/internal/domain/fixture"
	fixturemock "github.com/riskibarqy/infootball/internal/mocks/domain/fixture"
)

func TestMatchService_ListLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtures := fixturemock.NewProvider(t)
	service := NewMatchService(fixtures)

	fixtures.On("FetchFixtures", ctx, fixture.Query{Live: true}).
		Return(nil, nil).
		Once()

	got, err := service.ListLive(ctx)
	if err != nil {
		t.Fatalf("list live: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got=%v", got)
	}
}

func TestMatchService_ListByDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtures := fixturemock.NewProvider(t)
	service := NewMatchService(fixtures)

	fixtures.On("FetchFixtures", ctx, fixture.Query{Date: "2024-05-19"}).
		Return([]fixture.Match{{ID: 1, Phase: fixture.PhaseFinished}}, nil).
		Once()

	got, err := service.ListByDate(ctx, " 2024-05-19 ")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 1 || got[0].Phase != fixture.PhaseFinished {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestMatchService_ListByDate_InvalidDate(t *testing.T) {
	t.Parallel()

	service := NewMatchService(fixturemock.NewProvider(t))
	for _, date := range []string{"", "19/05/2024", "2024-13-01"} {
		if _, err := service.ListByDate(context.Background(), date); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("date %q: expected ErrInvalidInput, got %v", date, err)
		}
	}
}
