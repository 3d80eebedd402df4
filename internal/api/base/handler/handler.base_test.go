package basehdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct{}

func newTestHandler() *BaseHandler[testDoc, testDoc, testDoc] {
	return NewBaseHandler[testDoc, testDoc, testDoc](nil)
}

func TestNormalizeFilter_IDField(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	got := h.normalizeFilter(map[string]interface{}{
		"categoryId": id.Hex(),
		"title":      id.Hex(), // không phải ID field, phải giữ nguyên string
	})

	if got["categoryId"] != id {
		t.Errorf("chuỗi hex trên ID field phải được chuyển thành ObjectID, nhận được %T", got["categoryId"])
	}
	if got["title"] != id.Hex() {
		t.Errorf("field thường phải giữ nguyên string, nhận được %v", got["title"])
	}
}

func TestNormalizeFilter_ExtendedJSON(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	got := h.normalizeFilter(map[string]interface{}{
		"ref": map[string]interface{}{"$oid": id.Hex()},
	})

	if got["ref"] != id {
		t.Errorf("format {$oid} phải được chuyển thành ObjectID, nhận được %T", got["ref"])
	}
}

func TestNormalizeFilter_OperatorWithArray(t *testing.T) {
	h := newTestHandler()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	got := h.normalizeFilter(map[string]interface{}{
		"videoId": map[string]interface{}{
			"$in": []interface{}{a.Hex(), b.Hex()},
		},
	})

	op, ok := got["videoId"].(map[string]interface{})
	if !ok {
		t.Fatalf("cấu trúc operator phải được giữ nguyên, nhận được %T", got["videoId"])
	}
	arr, ok := op["$in"].([]interface{})
	if !ok || len(arr) != 2 {
		t.Fatalf("mảng trong $in bị biến đổi: %v", op["$in"])
	}
	if arr[0] != a || arr[1] != b {
		t.Error("từng phần tử hex trong $in phải được chuyển thành ObjectID")
	}
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{"password": "x"})
	if err == nil {
		t.Error("filter trên trường bị cấm phải trả về lỗi")
	}

	if err := h.validateFilter(map[string]interface{}{"title": "x"}); err != nil {
		t.Errorf("trường hợp lệ bị từ chối: %v", err)
	}
}

func TestValidateFilter_DisallowedOperator(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{
		"title": map[string]interface{}{"$where": "this.x == 1"},
	})
	if err == nil {
		t.Error("toán tử ngoài danh sách cho phép phải bị từ chối")
	}

	if err := h.validateFilter(map[string]interface{}{
		"order": map[string]interface{}{"$gte": 0},
	}); err != nil {
		t.Errorf("toán tử hợp lệ bị từ chối: %v", err)
	}
}

func TestValidateFilter_MaxFields(t *testing.T) {
	h := newTestHandler()
	h.SetFilterOptions(FilterOptions{MaxFields: 2, AllowedOperators: []string{"$eq"}})

	filter := map[string]interface{}{"a": 1, "b": 2, "c": 3}
	if err := h.validateFilter(filter); err == nil {
		t.Error("filter vượt quá số trường tối đa phải bị từ chối")
	}
}
