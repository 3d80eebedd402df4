package contentsvc

// Các hàm thuần xử lý thứ tự cho section và video ref.
// Bất biến: order của section là 0..m-1 trên toàn bộ section, order của
// video ref là 0..n-1 trong phạm vi một section: không trùng, không hở.

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	contentmodels "loke_store/internal/api/content/models"
)

// nextRefOrder trả về order cho video ref mới: 1 + max order hiện có, 0 nếu rỗng
func nextRefOrder(refs []contentmodels.VideoRef) int {
	if len(refs) == 0 {
		return 0
	}
	max := refs[0].Order
	for _, ref := range refs[1:] {
		if ref.Order > max {
			max = ref.Order
		}
	}
	return max + 1
}

// nextSectionOrder trả về order cho section mới: 1 + max order hiện có, 0 nếu rỗng
func nextSectionOrder(sections []contentmodels.Section) int {
	if len(sections) == 0 {
		return 0
	}
	max := sections[0].Order
	for _, sec := range sections[1:] {
		if sec.Order > max {
			max = sec.Order
		}
	}
	return max + 1
}

// firstDuplicateID trả về id đầu tiên xuất hiện nhiều hơn một lần trong danh sách
func firstDuplicateID(ids []primitive.ObjectID) (primitive.ObjectID, bool) {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return id, true
		}
		seen[id] = true
	}
	return primitive.NilObjectID, false
}

// sectionOrderFix là một cặp (section, order mới) cần ghi xuống DB khi nén
type sectionOrderFix struct {
	ID    primitive.ObjectID
	Order int
}

// sectionOrderFixes trả về các cặp (id, order mới) cần ghi để dãy section về
// lại 0..m-1: sắp xếp ổn định theo order hiện tại rồi chỉ trả về section có
// order lệch với vị trí của nó. Dùng sau khi xóa một section để đóng khoảng hở.
func sectionOrderFixes(sections []contentmodels.Section) []sectionOrderFix {
	sorted := make([]contentmodels.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	var fixes []sectionOrderFix
	for i, sec := range sorted {
		if sec.Order != i {
			fixes = append(fixes, sectionOrderFix{ID: sec.ID, Order: i})
		}
	}
	return fixes
}

// compactRefOrders nén order của các ref về 0..n-1, giữ nguyên thứ tự tương đối.
// Dùng sau khi xóa một ref để đóng khoảng hở.
func compactRefOrders(refs []contentmodels.VideoRef) []contentmodels.VideoRef {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Order < refs[j].Order
	})
	for i := range refs {
		refs[i].Order = i
	}
	return refs
}

// containsVideo kiểm tra section đã tham chiếu video này chưa
func containsVideo(refs []contentmodels.VideoRef, videoID primitive.ObjectID) bool {
	for _, ref := range refs {
		if ref.VideoID == videoID {
			return true
		}
	}
	return false
}

// removeRefByLocalID xóa ref có localId khỏi danh sách.
// Trả về ref đã xóa, danh sách còn lại và cờ tìm thấy.
func removeRefByLocalID(refs []contentmodels.VideoRef, localID primitive.ObjectID) (contentmodels.VideoRef, []contentmodels.VideoRef, bool) {
	for i, ref := range refs {
		if ref.LocalID == localID {
			remaining := make([]contentmodels.VideoRef, 0, len(refs)-1)
			remaining = append(remaining, refs[:i]...)
			remaining = append(remaining, refs[i+1:]...)
			return ref, remaining, true
		}
	}
	return contentmodels.VideoRef{}, refs, false
}

// applyRefOrderMap gán order mới cho các ref có localId trong orderByLocalID,
// giữ nguyên order của ref không được nhắc tới, sắp xếp toàn bộ theo order
// tăng dần (giữ thứ tự tương đối khi order bằng nhau) rồi nén về 0..n-1.
// Payload một phần vì vậy không để lại order trùng hoặc hở.
func applyRefOrderMap(refs []contentmodels.VideoRef, orderByLocalID map[primitive.ObjectID]int) []contentmodels.VideoRef {
	for i := range refs {
		if order, ok := orderByLocalID[refs[i].LocalID]; ok {
			refs[i].Order = order
		}
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Order < refs[j].Order
	})
	for i := range refs {
		refs[i].Order = i
	}
	return refs
}

// effectiveTitle trả về tiêu đề hiển thị cho storefront:
// tiêu đề override của ref → tiêu đề video → "Untitled"
func effectiveTitle(ref contentmodels.VideoRef, video contentmodels.Video) string {
	if ref.Title != "" {
		return ref.Title
	}
	if video.Title != "" {
		return video.Title
	}
	return "Untitled"
}

// playableURL trả về URL phát được của video, ưu tiên bản optimized.
// Trả về chuỗi rỗng nếu video không có URL nào (không phát được).
func playableURL(video contentmodels.Video) string {
	if video.OptimizedURL != "" {
		return video.OptimizedURL
	}
	return video.SourceURL
}
