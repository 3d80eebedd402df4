// Package contentsvc - Test các hàm thuần xử lý thứ tự của section và video ref.
package contentsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	contentmodels "loke_store/internal/api/content/models"
)

func makeRefs(orders ...int) []contentmodels.VideoRef {
	refs := make([]contentmodels.VideoRef, 0, len(orders))
	for _, o := range orders {
		refs = append(refs, contentmodels.VideoRef{
			LocalID: primitive.NewObjectID(),
			VideoID: primitive.NewObjectID(),
			Order:   o,
		})
	}
	return refs
}

func assertZeroGapOrders(t *testing.T, refs []contentmodels.VideoRef) {
	t.Helper()
	for i, ref := range refs {
		if ref.Order != i {
			t.Errorf("order tại vị trí %d phải là %d, nhận được %d", i, i, ref.Order)
		}
	}
}

func TestNextRefOrder(t *testing.T) {
	if got := nextRefOrder(nil); got != 0 {
		t.Errorf("danh sách rỗng phải trả về order 0, nhận được %d", got)
	}
	if got := nextRefOrder(makeRefs(0, 1, 2)); got != 3 {
		t.Errorf("danh sách [0,1,2] phải trả về order 3, nhận được %d", got)
	}
	// Danh sách có khoảng hở vẫn phải trả về 1 + max
	if got := nextRefOrder(makeRefs(0, 5)); got != 6 {
		t.Errorf("danh sách [0,5] phải trả về order 6, nhận được %d", got)
	}
}

func TestNextSectionOrder(t *testing.T) {
	if got := nextSectionOrder(nil); got != 0 {
		t.Errorf("chưa có section nào phải trả về order 0, nhận được %d", got)
	}
	sections := []contentmodels.Section{{Order: 0}, {Order: 1}, {Order: 2}}
	if got := nextSectionOrder(sections); got != 3 {
		t.Errorf("3 section [0,1,2] phải trả về order 3, nhận được %d", got)
	}
}

// Scenario: section có ref tại order [0,1,2], xóa ref giữa → còn lại phải
// được nén về [0,1] chứ không phải [0,2]
func TestRemoveAndCompact(t *testing.T) {
	refs := makeRefs(0, 1, 2)
	a, b, c := refs[0], refs[1], refs[2]

	removed, remaining, found := removeRefByLocalID(refs, b.LocalID)
	if !found {
		t.Fatal("không tìm thấy ref cần xóa theo localId")
	}
	if removed.LocalID != b.LocalID {
		t.Errorf("ref bị xóa sai: muốn %s, nhận được %s", b.LocalID.Hex(), removed.LocalID.Hex())
	}

	remaining = compactRefOrders(remaining)
	if len(remaining) != 2 {
		t.Fatalf("còn lại phải là 2 ref, nhận được %d", len(remaining))
	}
	if remaining[0].LocalID != a.LocalID || remaining[1].LocalID != c.LocalID {
		t.Error("thứ tự tương đối của các ref còn lại bị thay đổi sau khi nén")
	}
	assertZeroGapOrders(t, remaining)
}

func TestRemoveRefByLocalID_NotFound(t *testing.T) {
	refs := makeRefs(0, 1)
	_, remaining, found := removeRefByLocalID(refs, primitive.NewObjectID())
	if found {
		t.Error("localId không tồn tại mà vẫn báo tìm thấy")
	}
	if len(remaining) != 2 {
		t.Errorf("danh sách phải giữ nguyên khi không tìm thấy, nhận được %d ref", len(remaining))
	}
}

// Scenario: bulk-reorder [c:0, a:1, b:2] → đọc lại phải ra thứ tự c, a, b
func TestApplyRefOrderMap_FullPayload(t *testing.T) {
	refs := makeRefs(0, 1, 2)
	a, b, c := refs[0], refs[1], refs[2]

	result := applyRefOrderMap(refs, map[primitive.ObjectID]int{
		c.LocalID: 0,
		a.LocalID: 1,
		b.LocalID: 2,
	})

	want := []primitive.ObjectID{c.LocalID, a.LocalID, b.LocalID}
	for i, id := range want {
		if result[i].LocalID != id {
			t.Errorf("vị trí %d sai: muốn %s, nhận được %s", i, id.Hex(), result[i].LocalID.Hex())
		}
	}
	assertZeroGapOrders(t, result)
}

// Payload một phần: ref không được nhắc tới giữ vị trí theo order cũ,
// và kết quả cuối vẫn phải là 0..n-1 không hở không trùng
func TestApplyRefOrderMap_PartialPayload(t *testing.T) {
	refs := makeRefs(0, 1, 2)
	a, b, c := refs[0], refs[1], refs[2]

	// Chỉ đẩy c lên đầu, a và b không có trong payload
	result := applyRefOrderMap(refs, map[primitive.ObjectID]int{
		c.LocalID: 0,
	})

	// c (order 0) đứng trước a (order 0 cũ, vào sau nên xếp sau khi bằng nhau)
	if result[0].LocalID != c.LocalID && result[0].LocalID != a.LocalID {
		t.Error("phần tử đầu phải là c hoặc a sau khi reorder một phần")
	}
	if result[2].LocalID != b.LocalID {
		t.Errorf("b phải giữ vị trí cuối, nhận được %s", result[2].LocalID.Hex())
	}
	assertZeroGapOrders(t, result)
}

// localId không tồn tại trong section bị bỏ qua trong im lặng
func TestApplyRefOrderMap_UnknownLocalIDIgnored(t *testing.T) {
	refs := makeRefs(0, 1)
	a, b := refs[0], refs[1]

	result := applyRefOrderMap(refs, map[primitive.ObjectID]int{
		primitive.NewObjectID(): 0,
	})

	if result[0].LocalID != a.LocalID || result[1].LocalID != b.LocalID {
		t.Error("localId lạ phải bị bỏ qua, thứ tự phải giữ nguyên")
	}
	assertZeroGapOrders(t, result)
}

func TestContainsVideo(t *testing.T) {
	refs := makeRefs(0, 1)
	if !containsVideo(refs, refs[0].VideoID) {
		t.Error("không tìm thấy video đang có trong danh sách")
	}
	if containsVideo(refs, primitive.NewObjectID()) {
		t.Error("tìm thấy video không có trong danh sách")
	}
}

func TestEffectiveTitle(t *testing.T) {
	video := contentmodels.Video{Title: "Video gốc"}

	if got := effectiveTitle(contentmodels.VideoRef{Title: "Override"}, video); got != "Override" {
		t.Errorf("tiêu đề override của ref phải thắng, nhận được %q", got)
	}
	if got := effectiveTitle(contentmodels.VideoRef{}, video); got != "Video gốc" {
		t.Errorf("ref không có tiêu đề phải fallback về tiêu đề video, nhận được %q", got)
	}
	if got := effectiveTitle(contentmodels.VideoRef{}, contentmodels.Video{}); got != "Untitled" {
		t.Errorf("không có tiêu đề nào phải trả về Untitled, nhận được %q", got)
	}
}

func TestPlayableURL(t *testing.T) {
	both := contentmodels.Video{SourceURL: "https://cdn.example.com/raw.mp4", OptimizedURL: "https://cdn.example.com/opt.mp4"}
	if got := playableURL(both); got != "https://cdn.example.com/opt.mp4" {
		t.Errorf("phải ưu tiên optimizedUrl, nhận được %q", got)
	}

	sourceOnly := contentmodels.Video{SourceURL: "https://cdn.example.com/raw.mp4"}
	if got := playableURL(sourceOnly); got != "https://cdn.example.com/raw.mp4" {
		t.Errorf("không có optimizedUrl phải dùng sourceUrl, nhận được %q", got)
	}

	if got := playableURL(contentmodels.Video{}); got != "" {
		t.Errorf("video không có URL phải trả về chuỗi rỗng, nhận được %q", got)
	}
}

func TestFirstDuplicateID(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	if _, ok := firstDuplicateID([]primitive.ObjectID{a, b}); ok {
		t.Error("danh sách không trùng mà vẫn báo có id trùng")
	}

	// Payload [a, a, b]: id trùng phải bị phát hiện, không được lọt xuống vòng ghi
	dup, ok := firstDuplicateID([]primitive.ObjectID{a, a, b})
	if !ok {
		t.Fatal("không phát hiện được id xuất hiện hai lần")
	}
	if dup != a {
		t.Errorf("id trùng sai: muốn %s, nhận được %s", a.Hex(), dup.Hex())
	}

	if _, ok := firstDuplicateID(nil); ok {
		t.Error("danh sách rỗng mà vẫn báo có id trùng")
	}
}

func makeSections(orders ...int) []contentmodels.Section {
	sections := make([]contentmodels.Section, 0, len(orders))
	for _, o := range orders {
		sections = append(sections, contentmodels.Section{
			ID:    primitive.NewObjectID(),
			Order: o,
		})
	}
	return sections
}

// Scenario: hai section [S1:0, S2:1], xóa S1 → S2 phải được dời về order 0
func TestSectionOrderFixes_AfterDelete(t *testing.T) {
	remaining := makeSections(1)
	s2 := remaining[0]

	fixes := sectionOrderFixes(remaining)
	if len(fixes) != 1 {
		t.Fatalf("phải có đúng 1 section cần dời, nhận được %d", len(fixes))
	}
	if fixes[0].ID != s2.ID || fixes[0].Order != 0 {
		t.Errorf("S2 phải được dời về order 0, nhận được (%s, %d)", fixes[0].ID.Hex(), fixes[0].Order)
	}
}

func TestSectionOrderFixes_AlreadyCompact(t *testing.T) {
	if fixes := sectionOrderFixes(makeSections(0, 1, 2)); len(fixes) != 0 {
		t.Errorf("dãy đã là 0..m-1 mà vẫn sinh ra %d thao tác ghi", len(fixes))
	}
	if fixes := sectionOrderFixes(nil); len(fixes) != 0 {
		t.Errorf("không có section mà vẫn sinh ra %d thao tác ghi", len(fixes))
	}
}

func TestSectionOrderFixes_ClosesGaps(t *testing.T) {
	sections := makeSections(0, 2, 5)
	a, b, c := sections[0], sections[1], sections[2]

	fixes := sectionOrderFixes(sections)
	if len(fixes) != 2 {
		t.Fatalf("dãy [0,2,5] phải cần 2 thao tác ghi, nhận được %d", len(fixes))
	}
	if fixes[0].ID != b.ID || fixes[0].Order != 1 {
		t.Errorf("section order 2 phải về 1, nhận được (%s, %d)", fixes[0].ID.Hex(), fixes[0].Order)
	}
	if fixes[1].ID != c.ID || fixes[1].Order != 2 {
		t.Errorf("section order 5 phải về 2, nhận được (%s, %d)", fixes[1].ID.Hex(), fixes[1].Order)
	}

	// a đã đúng vị trí, không được sinh thao tác ghi thừa
	for _, fix := range fixes {
		if fix.ID == a.ID {
			t.Error("section đã đúng order mà vẫn bị ghi lại")
		}
	}
}
