package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MySQL mirrors writes to a MySQL database through gorm. Failures are logged
// at Warn and otherwise ignored; callers never see them.
type MySQL struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMySQL opens the database and migrates the mirror tables.
func NewMySQL(dsn string, logger *zap.Logger) (*MySQL, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql mirror: %w", err)
	}

	if err := db.AutoMigrate(
		&UserRow{},
		&MessageRow{},
		&EmotionRow{},
		&TherapySessionRow{},
		&GroupRow{},
		&GroupMemberRow{},
		&GroupMessageRow{},
		&CrisisRow{},
	); err != nil {
		return nil, fmt.Errorf("migrate mirror tables: %w", err)
	}

	return &MySQL{db: db, logger: logger}, nil
}

func (m *MySQL) save(ctx context.Context, kind string, row any) {
	if err := m.db.WithContext(ctx).Create(row).Error; err != nil {
		m.logger.Warn("mirror write failed", zap.String("kind", kind), zap.Error(err))
	}
}

func (m *MySQL) SaveUser(ctx context.Context, user UserRow) {
	m.save(ctx, "user", &user)
}

func (m *MySQL) SaveMessage(ctx context.Context, message MessageRow) {
	m.save(ctx, "message", &message)
}

func (m *MySQL) SaveEmotionSample(ctx context.Context, sample EmotionRow) {
	m.save(ctx, "emotion_sample", &sample)
}

func (m *MySQL) SaveGroup(ctx context.Context, group GroupRow) {
	m.save(ctx, "group", &group)
}

func (m *MySQL) SaveGroupMember(ctx context.Context, member GroupMemberRow) {
	m.save(ctx, "group_member", &member)
}

func (m *MySQL) SaveGroupMessage(ctx context.Context, message GroupMessageRow) {
	m.save(ctx, "group_message", &message)
}

func (m *MySQL) DeactivateGroupMember(ctx context.Context, groupID, userID string) {
	err := m.db.WithContext(ctx).
		Model(&GroupMemberRow{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("is_active", false).Error
	if err != nil {
		m.logger.Warn("mirror write failed", zap.String("kind", "member_deactivate"), zap.Error(err))
	}
}

func (m *MySQL) SaveCrisisLog(ctx context.Context, entry CrisisRow) {
	m.save(ctx, "crisis_log", &entry)
}

func (m *MySQL) RecentMessages(ctx context.Context, sessionID string, limit int) []MessageRow {
	var rows []MessageRow
	err := m.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		m.logger.Warn("mirror read failed", zap.Error(err))
		return nil
	}
	return rows
}
