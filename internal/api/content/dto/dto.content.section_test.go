package contentdto

import "testing"

func TestSectionUpdateInput_Fields_Empty(t *testing.T) {
	in := &SectionUpdateInput{}
	if len(in.Fields()) != 0 {
		t.Error("input rỗng phải trả về map rỗng")
	}
}

func TestSectionUpdateInput_Fields_PartialUpdate(t *testing.T) {
	title := "Section mới"
	visible := false
	order := 3

	in := &SectionUpdateInput{
		Title:   &title,
		Visible: &visible,
		Order:   &order,
	}

	fields := in.Fields()
	if len(fields) != 3 {
		t.Fatalf("phải có đúng 3 field, nhận được %d", len(fields))
	}
	if fields["title"] != "Section mới" {
		t.Errorf("title sai: %v", fields["title"])
	}
	// visible=false phải được ghi nhận, không bị nhầm với field vắng mặt
	if v, ok := fields["visible"].(bool); !ok || v {
		t.Errorf("visible phải là false, nhận được %v", fields["visible"])
	}
	if fields["order"] != 3 {
		t.Errorf("order sai: %v", fields["order"])
	}
	if _, ok := fields["layoutType"]; ok {
		t.Error("field vắng mặt không được xuất hiện trong map")
	}
}

func TestSectionUpdateInput_Fields_Configs(t *testing.T) {
	in := &SectionUpdateInput{
		GridConfig: map[string]interface{}{"columns": 3},
	}

	fields := in.Fields()
	grid, ok := fields["gridConfig"].(map[string]interface{})
	if !ok {
		t.Fatal("gridConfig phải được giữ nguyên kiểu map")
	}
	if grid["columns"] != 3 {
		t.Errorf("gridConfig bị biến đổi: %v", grid)
	}
	if _, ok := fields["sliderConfig"]; ok {
		t.Error("sliderConfig nil không được xuất hiện trong map")
	}
}
