package services

import (
	"context"
	"sync"
	"time"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/events"
	"food_bridge/core/global"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// feedSubscription là một kênh nhận snapshot của một tác nhân.
// Kênh đệm 1 phần tử, snapshot cũ chưa đọc bị thay bằng snapshot mới nhất.
type feedSubscription struct {
	id      string
	role    string
	actorID primitive.ObjectID

	mu     sync.Mutex
	ch     chan *FeedSnapshot
	closed bool
}

// push đẩy snapshot mới nhất vào kênh, thay thế snapshot cũ chưa được đọc
func (sub *feedSubscription) push(snapshot *FeedSnapshot) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	select {
	case <-sub.ch: // bỏ snapshot cũ chưa đọc
	default:
	}
	sub.ch <- snapshot
}

func (sub *feedSubscription) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if !sub.closed {
		sub.closed = true
		close(sub.ch)
	}
}

// FeedHub giữ các subscription feed đang mở và đẩy snapshot tính lại
// cho từng subscriber mỗi khi collection schedules thay đổi.
type FeedHub struct {
	mu          sync.RWMutex
	subs        map[string]*feedSubscription
	feedService *FeedService
}

var (
	feedHub     *FeedHub
	feedHubErr  error
	feedHubOnce sync.Once
)

// GetFeedHub trả về FeedHub dùng chung, khởi tạo và đăng ký nghe
// data-change event ở lần gọi đầu tiên.
func GetFeedHub() (*FeedHub, error) {
	feedHubOnce.Do(func() {
		feedService, err := NewFeedService()
		if err != nil {
			feedHubErr = err
			return
		}
		feedHub = &FeedHub{
			subs:        make(map[string]*feedSubscription),
			feedService: feedService,
		}
		events.OnDataChanged(feedHub.onDataChanged)
	})
	return feedHub, feedHubErr
}

// Subscribe mở một subscription feed cho tác nhân trong ctx.
// Snapshot đầu tiên được đẩy ngay khi đăng ký; mỗi thay đổi trên collection
// schedules đẩy tiếp snapshot tính lại. Subscription tự gỡ và đóng kênh
// khi ctx bị hủy.
func (h *FeedHub) Subscribe(ctx context.Context) (string, <-chan *FeedSnapshot, error) {
	role, _ := GetRoleFromContext(ctx)
	actorID, _ := GetActorIDFromContext(ctx)

	sub := &feedSubscription{
		id:      uuid.NewString(),
		role:    role,
		actorID: actorID,
		ch:      make(chan *FeedSnapshot, 1),
	}

	snapshot, err := h.snapshotFor(ctx, sub)
	if err != nil {
		return "", nil, err
	}

	h.mu.Lock()
	h.subs[sub.id] = sub
	h.mu.Unlock()

	sub.push(snapshot)

	go func() {
		<-ctx.Done()
		h.remove(sub.id)
	}()

	logrus.WithFields(logrus.Fields{
		"subscriptionId": sub.id,
		"role":           role,
	}).Debug("Đã mở subscription feed")

	return sub.id, sub.ch, nil
}

// remove gỡ subscription khỏi hub và đóng kênh của nó
func (h *FeedHub) remove(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()

	if ok {
		sub.close()
		logrus.WithFields(logrus.Fields{
			"subscriptionId": id,
		}).Debug("Đã đóng subscription feed")
	}
}

// Count trả về số subscription đang mở
func (h *FeedHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// snapshotFor dựng snapshot theo scope của subscription
func (h *FeedHub) snapshotFor(ctx context.Context, sub *feedSubscription) (*FeedSnapshot, error) {
	switch sub.role {
	case models.RoleStore:
		return h.feedService.SnapshotForStore(ctx, sub.actorID)
	case models.RoleVolunteer:
		return h.feedService.SnapshotForVolunteer(ctx, sub.actorID)
	default:
		return h.feedService.SnapshotAll(ctx)
	}
}

// onDataChanged nhận data-change event từ tầng CRUD; chỉ quan tâm collection
// schedules. Handler chạy trong goroutine riêng của events nên truy vấn lại
// ở đây không chặn write gốc. Context của write gốc có thể đã bị hủy,
// dùng context nền có timeout cho các truy vấn tính lại.
func (h *FeedHub) onDataChanged(_ context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.Schedules {
		return
	}

	h.mu.RLock()
	subs := make([]*feedSubscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		snapshot, err := h.snapshotFor(ctx, sub)
		cancel()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"subscriptionId": sub.id,
				"error":          err.Error(),
			}).Warn("Không tính lại được snapshot feed cho subscriber")
			continue
		}
		sub.push(snapshot)
	}
}
