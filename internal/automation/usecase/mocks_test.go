package usecase

import (
	"context"
	"sync"
	"time"

	"automation-srv/internal/automation"
	"automation-srv/internal/ledger"
	"automation-srv/internal/model"
	"automation-srv/pkg/instagram"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) ListActiveByPost(ctx context.Context, postID string) ([]model.Automation, error) {
	args := m.Called(ctx, postID)
	list, _ := args.Get(0).([]model.Automation)
	return list, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetProfile(ctx context.Context, commenterID string) (model.CommenterProfile, bool, error) {
	args := m.Called(ctx, commenterID)
	return args.Get(0).(model.CommenterProfile), args.Bool(1), args.Error(2)
}

func (m *mockCache) SaveProfile(ctx context.Context, commenterID string, profile model.CommenterProfile) error {
	return m.Called(ctx, commenterID, profile).Error(0)
}

type mockEncrypter struct{ mock.Mock }

func (m *mockEncrypter) Decrypt(ciphertext string) (string, error) {
	args := m.Called(ciphertext)
	return args.String(0), args.Error(1)
}

type mockInstagram struct{ mock.Mock }

func (m *mockInstagram) SendMessage(ctx context.Context, token string, req instagram.SendMessageRequest) (*instagram.SendMessageResponse, error) {
	args := m.Called(ctx, token, req)
	resp, _ := args.Get(0).(*instagram.SendMessageResponse)
	return resp, args.Error(1)
}

func (m *mockInstagram) ReplyToComment(ctx context.Context, token, commentID, message string) (*instagram.ReplyResponse, error) {
	args := m.Called(ctx, token, commentID, message)
	resp, _ := args.Get(0).(*instagram.ReplyResponse)
	return resp, args.Error(1)
}

func (m *mockInstagram) GetUserProfile(ctx context.Context, token, userID string, fields []string) (*instagram.UserProfile, error) {
	args := m.Called(ctx, token, userID, fields)
	resp, _ := args.Get(0).(*instagram.UserProfile)
	return resp, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishDelivery(ctx context.Context, event automation.DeliveryEvent) error {
	return m.Called(ctx, event).Error(0)
}

// fakeLedger keeps rows in memory. Rows recorded inside a failed transaction are discarded.
type fakeLedger struct {
	mu        sync.Mutex
	rows      []model.DeliveryRecord
	hasErr    error
	recordErr error
	kindErr   map[model.DeliveryKind]error
	txCalls   int
}

func (f *fakeLedger) RunInTx(ctx context.Context, _ ledger.TupleKey, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	f.txCalls++
	before := len(f.rows)
	f.mu.Unlock()

	if err := fn(ctx); err != nil {
		f.mu.Lock()
		f.rows = f.rows[:before]
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeLedger) HasSent(_ context.Context, kind model.DeliveryKind, automationID, postID, commenterID string) (bool, error) {
	if f.hasErr != nil {
		return false, f.hasErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.Kind == kind && r.AutomationID == automationID && r.PostID == postID &&
			r.CommenterID == commenterID && r.Status == model.DeliveryStatusSent {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedger) Record(_ context.Context, opt ledger.RecordOptions) (model.DeliveryRecord, error) {
	if f.recordErr != nil {
		return model.DeliveryRecord{}, f.recordErr
	}
	if err := f.kindErr[opt.Kind]; err != nil {
		return model.DeliveryRecord{}, err
	}
	rec := model.DeliveryRecord{
		ID:           uuid.New().String(),
		Kind:         opt.Kind,
		AutomationID: opt.AutomationID,
		PostID:       opt.PostID,
		CommenterID:  opt.CommenterID,
		CommentID:    opt.CommentID,
		Status:       opt.Status,
		Profile:      opt.Profile,
		SentAt:       time.Now().UTC(),
	}
	f.mu.Lock()
	f.rows = append(f.rows, rec)
	f.mu.Unlock()
	return rec, nil
}

func (f *fakeLedger) byKind(kind model.DeliveryKind) []model.DeliveryRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.DeliveryRecord
	for _, r := range f.rows {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
