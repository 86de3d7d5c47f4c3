package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-report-service/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB returns a gorm handle that fails the test on any unexpected SQL.
// Repositories are faked, so no statement should reach it.
func newTestDB(t *testing.T) *gorm.DB {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

type auditRecord struct {
	userID   *uuid.UUID
	action   string
	metadata entity.JSON
}

type fakeAuditService struct {
	records []auditRecord
	err     error
}

func (f *fakeAuditService) Record(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	f.records = append(f.records, auditRecord{userID: userID, action: action, metadata: metadata})
	return f.err
}

func (f *fakeAuditService) actions() []string {
	actions := make([]string, 0, len(f.records))
	for _, r := range f.records {
		actions = append(actions, r.action)
	}
	return actions
}
