package repository

import (
	"database/sql"
	"testing"
	"time"

	"clinic-report-service/internal/domain/entity"
	domainRepo "clinic-report-service/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuditLogRepoTestSuite struct {
	suite.Suite
	sqlDB *sql.DB
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  domainRepo.AuditLogRepository
}

func (s *AuditLogRepoTestSuite) SetupTest() {
	s.sqlDB, s.db, s.mock = newMockDB(s.T())
	s.mock.MatchExpectationsInOrder(true)
	s.repo = NewAuditLogRepository()
}

func (s *AuditLogRepoTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *AuditLogRepoTestSuite) TestCreate() {
	userID := uuid.New()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	s.mock.ExpectCommit()

	log := &entity.AuditLog{
		UserID:   &userID,
		Action:   entity.AuditActionVoiceQuery,
		Metadata: entity.JSON{"texto": "citas de hoy"},
	}
	err := s.repo.Create(s.db, log)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(7), log.ID)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *AuditLogRepoTestSuite) TestFindAll_FiltersAndPages() {
	userID := uuid.New()

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action = \$1 AND user_id = \$2`).
		WithArgs(entity.AuditActionVoiceQuery, userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	s.mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE action = \$1 AND user_id = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(entity.AuditActionVoiceQuery, userID, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action", "metadata", "created_at"}).
			AddRow(12, nil, entity.AuditActionVoiceQuery, []byte(`{"texto":"citas de hoy"}`), time.Now()))

	logs, total, err := s.repo.FindAll(s.db, &entity.AuditLogFilter{
		Action: entity.AuditActionVoiceQuery,
		UserID: &userID,
		Limit:  10,
		Offset: 10,
	})
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(25), total)
	s.Require().Len(logs, 1)
	assert.Equal(s.T(), "citas de hoy", logs[0].Metadata["texto"])
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *AuditLogRepoTestSuite) TestFindAll_NilFilter() {
	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	s.mock.ExpectQuery(`SELECT \* FROM "audit_logs" ORDER BY created_at DESC$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action"}))

	logs, total, err := s.repo.FindAll(s.db, nil)
	s.Require().NoError(err)
	assert.Zero(s.T(), total)
	assert.Empty(s.T(), logs)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *AuditLogRepoTestSuite) TestFindByID_NotFound() {
	s.mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action"}))

	log, err := s.repo.FindByID(s.db, 99)
	s.Require().NoError(err)
	assert.Nil(s.T(), log)
}

func TestAuditLogRepoTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogRepoTestSuite))
}
