package sqlc

import (
	"context"
	"net"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
)

func testInet() pqtype.Inet {
	return pqtype.Inet{
		IPNet: net.IPNet{IP: net.IPv4(10, 0, 0, 1), Mask: net.CIDRMask(32, 32)},
		Valid: true,
	}
}

func TestAnalyticsManagerCounters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	manager := NewDbManager(New(db)).Analytics
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO analytics").WillReturnResult(sqlmock.NewResult(1, 1))
	if err := manager.IncrementGamesCreatedCount(ctx, testInet()); err != nil {
		t.Fatal(err)
	}

	mock.ExpectExec("INSERT INTO analytics").WillReturnResult(sqlmock.NewResult(1, 1))
	if err := manager.IncrementRematchCalledCount(ctx, testInet()); err != nil {
		t.Fatal(err)
	}

	mock.ExpectQuery("SELECT games_created_count FROM analytics").
		WillReturnRows(sqlmock.NewRows([]string{"games_created_count"}).AddRow(int64(3)))
	count, err := manager.GetGamesCreatedCount(ctx, testInet())
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("expected games created count 3, got %d", count)
	}

	mock.ExpectQuery("SELECT rematch_called_count FROM analytics").
		WillReturnRows(sqlmock.NewRows([]string{"rematch_called_count"}).AddRow(int64(1)))
	count, err = manager.GetRematchCalledCount(ctx, testInet())
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected rematch called count 1, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
