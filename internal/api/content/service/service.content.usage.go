package contentsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sectionScanner đếm số section (ngoài section bị loại trừ) đang tham chiếu một video
type sectionScanner interface {
	CountContainingVideo(ctx context.Context, videoID primitive.ObjectID, excludeSectionID primitive.ObjectID) (int64, error)
}

// usageMarker cập nhật cờ isUsed của video
type usageMarker interface {
	SetUsed(ctx context.Context, videoID primitive.ObjectID, used bool) error
}

// UsageReconciler giữ cờ isUsed của video nhất quán với thực tế tham chiếu.
// Cờ luôn được tính lại bằng cách quét các section, không dùng counter:
// counter có thể trôi khi một bước ghi thất bại giữa chừng, còn quét thì
// tự hội tụ về trạng thái đúng.
type UsageReconciler struct {
	sections sectionScanner
	videos   usageMarker
}

// NewUsageReconciler tạo mới UsageReconciler
func NewUsageReconciler(sections sectionScanner, videos usageMarker) *UsageReconciler {
	return &UsageReconciler{
		sections: sections,
		videos:   videos,
	}
}

// OnVideoRemovedFromSection chạy sau khi một video ref bị gỡ khỏi section
// (xóa trực tiếp hoặc cascade khi xóa section). Quét các section khác:
// không còn section nào tham chiếu → isUsed=false; còn → giữ nguyên.
// Video đã bị xóa khỏi thư viện → no-op (SetUsed bỏ qua id không tồn tại).
//
// excludeSectionID là section vừa gỡ ref: khi xóa section, reconcile chạy
// trước khi document section bị xóa nên phải loại nó khỏi phạm vi quét.
func (r *UsageReconciler) OnVideoRemovedFromSection(ctx context.Context, videoID primitive.ObjectID, excludeSectionID primitive.ObjectID) error {
	count, err := r.sections.CountContainingVideo(ctx, videoID, excludeSectionID)
	if err != nil {
		return err
	}

	if count > 0 {
		// Video vẫn được dùng ở section khác, không đổi cờ
		return nil
	}

	return r.videos.SetUsed(ctx, videoID, false)
}
