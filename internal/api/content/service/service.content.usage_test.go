package contentsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeScanner struct {
	count int64
	err   error

	gotVideoID   primitive.ObjectID
	gotExcludeID primitive.ObjectID
}

func (f *fakeScanner) CountContainingVideo(_ context.Context, videoID primitive.ObjectID, excludeSectionID primitive.ObjectID) (int64, error) {
	f.gotVideoID = videoID
	f.gotExcludeID = excludeSectionID
	return f.count, f.err
}

type fakeMarker struct {
	called  bool
	gotused bool
	gotID   primitive.ObjectID
	err     error
}

func (f *fakeMarker) SetUsed(_ context.Context, videoID primitive.ObjectID, used bool) error {
	f.called = true
	f.gotID = videoID
	f.gotused = used
	return f.err
}

// Scenario: video nằm trong 2 section, gỡ khỏi section A → vẫn còn section B
// tham chiếu nên cờ isUsed không được đụng tới
func TestReconciler_StillReferencedElsewhere(t *testing.T) {
	scanner := &fakeScanner{count: 1}
	marker := &fakeMarker{}
	r := NewUsageReconciler(scanner, marker)

	videoID := primitive.NewObjectID()
	sectionID := primitive.NewObjectID()

	if err := r.OnVideoRemovedFromSection(context.Background(), videoID, sectionID); err != nil {
		t.Fatalf("reconcile trả về lỗi: %v", err)
	}
	if marker.called {
		t.Error("video vẫn còn được tham chiếu mà cờ isUsed vẫn bị cập nhật")
	}
	if scanner.gotVideoID != videoID {
		t.Error("quét sai videoId")
	}
	if scanner.gotExcludeID != sectionID {
		t.Error("section vừa gỡ ref phải bị loại khỏi phạm vi quét")
	}
}

// Không còn section nào tham chiếu → isUsed phải về false
func TestReconciler_LastReferenceRemoved(t *testing.T) {
	scanner := &fakeScanner{count: 0}
	marker := &fakeMarker{}
	r := NewUsageReconciler(scanner, marker)

	videoID := primitive.NewObjectID()
	if err := r.OnVideoRemovedFromSection(context.Background(), videoID, primitive.NewObjectID()); err != nil {
		t.Fatalf("reconcile trả về lỗi: %v", err)
	}
	if !marker.called {
		t.Fatal("hết tham chiếu mà SetUsed không được gọi")
	}
	if marker.gotused {
		t.Error("cờ isUsed phải được hạ xuống false")
	}
	if marker.gotID != videoID {
		t.Error("SetUsed gọi sai videoId")
	}
}

func TestReconciler_ScanErrorPropagates(t *testing.T) {
	scanErr := errors.New("mongo: network timeout")
	scanner := &fakeScanner{err: scanErr}
	marker := &fakeMarker{}
	r := NewUsageReconciler(scanner, marker)

	err := r.OnVideoRemovedFromSection(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, scanErr) {
		t.Errorf("lỗi quét phải được trả nguyên vẹn, nhận được %v", err)
	}
	if marker.called {
		t.Error("quét lỗi thì không được cập nhật cờ")
	}
}

func TestReconciler_MarkErrorPropagates(t *testing.T) {
	markErr := errors.New("mongo: write concern error")
	scanner := &fakeScanner{count: 0}
	marker := &fakeMarker{err: markErr}
	r := NewUsageReconciler(scanner, marker)

	err := r.OnVideoRemovedFromSection(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, markErr) {
		t.Errorf("lỗi cập nhật cờ phải được trả nguyên vẹn, nhận được %v", err)
	}
}
