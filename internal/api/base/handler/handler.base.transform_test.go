package basehdl

import "testing"

type flagDoc struct {
	Title   string `bson:"title"`
	Visible bool   `bson:"visible" default:"true"`
}

type flagInput struct {
	Title   string
	Visible *bool
}

func newFlagHandler() *BaseHandler[flagDoc, flagInput, flagInput] {
	return NewBaseHandler[flagDoc, flagInput, flagInput](nil)
}

// Caller gửi visible=false tường minh: giá trị phải được giữ nguyên qua transform,
// không bị default tag lật thành true
func TestTransformCreate_ExplicitFalseSurvives(t *testing.T) {
	falsy := false
	h := newFlagHandler()

	model, err := h.TransformCreateInputToModel(&flagInput{Title: "Ẩn", Visible: &falsy})
	if err != nil {
		t.Fatalf("transform trả về lỗi: %v", err)
	}
	if model.Visible {
		t.Error("visible=false tường minh bị lật thành true khi tạo mới")
	}
}

// Caller không gửi field: đường tạo mới rơi về default tag của model
func TestTransformCreate_NilPointerFallsBackToDefault(t *testing.T) {
	h := newFlagHandler()

	model, err := h.TransformCreateInputToModel(&flagInput{Title: "Mới"})
	if err != nil {
		t.Fatalf("transform trả về lỗi: %v", err)
	}
	if !model.Visible {
		t.Error("field vắng mặt khi tạo mới phải nhận default true")
	}
}

func TestTransformCreate_ExplicitTrue(t *testing.T) {
	truth := true
	h := newFlagHandler()

	model, err := h.TransformCreateInputToModel(&flagInput{Title: "Hiện", Visible: &truth})
	if err != nil {
		t.Fatalf("transform trả về lỗi: %v", err)
	}
	if !model.Visible {
		t.Error("visible=true tường minh phải được copy sang model")
	}
}

// Đường update không được áp default: field vắng mặt phải giữ zero value
// để buildPartialUpdate loại nó khỏi $set
func TestTransformUpdate_NilPointerDoesNotApplyDefault(t *testing.T) {
	h := newFlagHandler()

	model, err := h.TransformUpdateInputToModel(&flagInput{Title: "Đổi tên"})
	if err != nil {
		t.Fatalf("transform trả về lỗi: %v", err)
	}
	if model.Visible {
		t.Error("update không gửi visible mà model vẫn bị set default true")
	}
}
