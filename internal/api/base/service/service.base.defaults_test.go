package basesvc

import (
	"reflect"
	"testing"

	contentmodels "loke_store/internal/api/content/models"
)

// visible=false tường minh từ caller phải sống sót qua bước áp default khi insert:
// default tag trên field bool không được phép lật false thành true
func TestApplyInsertDefaults_KeepsExplicitFalseBool(t *testing.T) {
	section := contentmodels.Section{
		Title:      "Section ẩn",
		LayoutType: "card",
		Visible:    false,
	}

	applyInsertDefaultsToModel(&section)

	if section.Visible {
		t.Error("visible=false bị default tag lật thành true trước khi insert")
	}
}

func TestApplyInsertDefaults_StringDefault(t *testing.T) {
	section := contentmodels.Section{Title: "Section mới"}

	applyInsertDefaultsToModel(&section)

	if section.LayoutType != "card" {
		t.Errorf("layoutType rỗng phải nhận default card, nhận được %q", section.LayoutType)
	}

	// Giá trị đã có không bị ghi đè
	section2 := contentmodels.Section{Title: "Section grid", LayoutType: "grid"}
	applyInsertDefaultsToModel(&section2)
	if section2.LayoutType != "grid" {
		t.Errorf("layoutType đã set bị default ghi đè thành %q", section2.LayoutType)
	}
}

func TestGetInsertDefaults_SkipsBoolFields(t *testing.T) {
	type doc struct {
		Status string `bson:"status" default:"active"`
		Flag   bool   `bson:"flag" default:"true"`
	}

	var d doc
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(d))

	if _, ok := defaults["flag"]; ok {
		t.Error("default tag trên field bool phải bị bỏ qua ở tầng insert")
	}
	if defaults["status"] != "active" {
		t.Errorf("default cho field string phải được giữ, nhận được %v", defaults["status"])
	}
}
