package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("errors.Is phải khớp với chính sentinel error")
	}

	wrapped := fmt.Errorf("tìm section: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is phải khớp qua lớp wrap của fmt.Errorf")
	}

	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("hai sentinel khác nhau không được khớp")
	}
}

func TestSectionErrors_StatusCode(t *testing.T) {
	var appErr *Error

	if !errors.As(ErrVideoAlreadyInSection, &appErr) {
		t.Fatal("ErrVideoAlreadyInSection phải là *Error")
	}
	if appErr.StatusCode != StatusConflict {
		t.Errorf("video trùng trong section phải là 409, nhận được %d", appErr.StatusCode)
	}

	if !errors.As(ErrSectionVideoNotFound, &appErr) {
		t.Fatal("ErrSectionVideoNotFound phải là *Error")
	}
	if appErr.StatusCode != StatusNotFound {
		t.Errorf("không tìm thấy video trong section phải là 404, nhận được %d", appErr.StatusCode)
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải trả về nil, nhận được %v", got)
	}

	// Lỗi nghiệp vụ đã phân loại không được convert lại
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận được %v", got)
	}
	if got := ConvertMongoError(ErrVideoAlreadyInSection); !errors.Is(got, ErrVideoAlreadyInSection) {
		t.Errorf("lỗi nghiệp vụ phải được giữ nguyên, nhận được %v", got)
	}

	// Lỗi lạ phải được gói thành *Error với status 500
	raw := errors.New("socket closed")
	got := ConvertMongoError(raw)
	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("lỗi lạ phải được gói thành *Error, nhận được %T", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi lạ phải map về 500, nhận được %d", appErr.StatusCode)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	cases := []struct {
		code int32
		want error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}

	for _, tc := range cases {
		got := ConvertMongoError(mongo.CommandError{Code: tc.code})
		if !errors.Is(got, tc.want) {
			t.Errorf("mã lỗi %d map sai: nhận được %v", tc.code, got)
		}
	}
}
