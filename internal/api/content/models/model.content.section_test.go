package models

import "testing"

func TestDefaultVideoSettings(t *testing.T) {
	s := DefaultVideoSettings()

	if s.Autoplay {
		t.Error("autoplay mặc định phải là false")
	}
	if s.Loop {
		t.Error("loop mặc định phải là false")
	}
	if !s.Muted {
		t.Error("muted mặc định phải là true")
	}
	if !s.Controls {
		t.Error("controls mặc định phải là true")
	}
	if !s.PlaysInline {
		t.Error("playsInline mặc định phải là true")
	}
}

func TestVideoSettingsPatch_Apply(t *testing.T) {
	truth := true
	falsy := false

	base := DefaultVideoSettings()

	// Patch một phần: chỉ field non-nil được merge
	patch := &VideoSettingsPatch{Autoplay: &truth, Muted: &falsy}
	got := patch.Apply(base)

	if !got.Autoplay {
		t.Error("autoplay trong patch phải được áp dụng")
	}
	if got.Muted {
		t.Error("muted=false trong patch phải được áp dụng")
	}
	if !got.Controls || !got.PlaysInline {
		t.Error("field vắng mặt trong patch phải giữ nguyên giá trị cũ")
	}
	if got.Loop {
		t.Error("loop không có trong patch mà vẫn bị thay đổi")
	}
}

func TestVideoSettingsPatch_Apply_Nil(t *testing.T) {
	var patch *VideoSettingsPatch
	base := DefaultVideoSettings()

	got := patch.Apply(base)
	if got != base {
		t.Error("patch nil phải trả về settings không đổi")
	}
}

func TestVideoSettingsPatch_Apply_Empty(t *testing.T) {
	base := DefaultVideoSettings()

	got := (&VideoSettingsPatch{}).Apply(base)
	if got != base {
		t.Error("patch rỗng phải trả về settings không đổi")
	}
}
