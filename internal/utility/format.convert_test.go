package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	got := String2ObjectID(id.Hex())
	if got != id {
		t.Errorf("chuyển hex hợp lệ sai: %s", got.Hex())
	}

	// Hex không hợp lệ phải trả về NilObjectID thay vì panic
	if got := String2ObjectID("not-a-hex"); !got.IsZero() {
		t.Errorf("hex không hợp lệ phải trả về NilObjectID, nhận được %s", got.Hex())
	}
	if got := String2ObjectID(""); !got.IsZero() {
		t.Error("chuỗi rỗng phải trả về NilObjectID")
	}
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	got := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("chuyển mảng hex sai: %v", got)
	}
}

func TestSliceContains(t *testing.T) {
	nums := []int{1, 2, 3}
	if !Contains(nums, 2) {
		t.Error("không tìm thấy phần tử đang có trong slice")
	}
	if Contains(nums, 9) {
		t.Error("tìm thấy phần tử không có trong slice")
	}
}
