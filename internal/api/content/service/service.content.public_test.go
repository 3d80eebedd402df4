package contentsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	contentmodels "loke_store/internal/api/content/models"
)

// Section có 1 ref trỏ tới video đã bị xóa và 1 ref phát được:
// section vẫn xuất hiện nhưng ref hỏng bị loại bỏ trong im lặng
func TestResolvePublicSection_SkipsMissingVideo(t *testing.T) {
	okVideo := contentmodels.Video{
		ID:        primitive.NewObjectID(),
		Title:     "Video còn sống",
		SourceURL: "https://cdn.example.com/ok.mp4",
	}
	deletedID := primitive.NewObjectID()

	sec := contentmodels.Section{
		ID:    primitive.NewObjectID(),
		Title: "Trang chủ",
		Videos: []contentmodels.VideoRef{
			{LocalID: primitive.NewObjectID(), VideoID: deletedID, Order: 0},
			{LocalID: primitive.NewObjectID(), VideoID: okVideo.ID, Order: 1},
		},
	}
	videosByID := map[primitive.ObjectID]contentmodels.Video{okVideo.ID: okVideo}

	got := resolvePublicSection(sec, videosByID)
	if len(got.Videos) != 1 {
		t.Fatalf("chỉ ref phát được mới xuất hiện, nhận được %d video", len(got.Videos))
	}
	if got.Videos[0].VideoID != okVideo.ID.Hex() {
		t.Error("ref trỏ tới video đã xóa phải bị loại, ref còn sống phải được giữ")
	}
	if got.Videos[0].URL != okVideo.SourceURL {
		t.Errorf("URL phát sai: %q", got.Videos[0].URL)
	}
	if got.Videos[0].Title != "Video còn sống" {
		t.Errorf("ref không có tiêu đề riêng phải lấy tiêu đề video, nhận được %q", got.Videos[0].Title)
	}
}

// Video tồn tại nhưng không có URL nào phát được cũng bị loại
func TestResolvePublicSection_SkipsVideoWithoutURL(t *testing.T) {
	noURL := contentmodels.Video{ID: primitive.NewObjectID(), Title: "Đang xử lý"}

	sec := contentmodels.Section{
		ID: primitive.NewObjectID(),
		Videos: []contentmodels.VideoRef{
			{LocalID: primitive.NewObjectID(), VideoID: noURL.ID, Order: 0},
		},
	}
	videosByID := map[primitive.ObjectID]contentmodels.Video{noURL.ID: noURL}

	got := resolvePublicSection(sec, videosByID)
	if len(got.Videos) != 0 {
		t.Errorf("video không có URL phải bị loại, nhận được %d video", len(got.Videos))
	}
}

// Ref có tiêu đề override và video có optimizedUrl: cả hai phải được ưu tiên
func TestResolvePublicSection_Overrides(t *testing.T) {
	video := contentmodels.Video{
		ID:           primitive.NewObjectID(),
		Title:        "Tiêu đề gốc",
		SourceURL:    "https://cdn.example.com/raw.mp4",
		OptimizedURL: "https://cdn.example.com/opt.mp4",
	}

	sec := contentmodels.Section{
		ID: primitive.NewObjectID(),
		Videos: []contentmodels.VideoRef{
			{
				LocalID:  primitive.NewObjectID(),
				VideoID:  video.ID,
				Title:    "Tiêu đề riêng của section",
				Order:    0,
				Settings: contentmodels.DefaultVideoSettings(),
			},
		},
	}
	videosByID := map[primitive.ObjectID]contentmodels.Video{video.ID: video}

	got := resolvePublicSection(sec, videosByID)
	if len(got.Videos) != 1 {
		t.Fatalf("section phải có 1 video, nhận được %d", len(got.Videos))
	}
	if got.Videos[0].Title != "Tiêu đề riêng của section" {
		t.Errorf("tiêu đề override phải thắng, nhận được %q", got.Videos[0].Title)
	}
	if got.Videos[0].URL != video.OptimizedURL {
		t.Errorf("phải ưu tiên optimizedUrl, nhận được %q", got.Videos[0].URL)
	}
	if !got.Videos[0].Settings.Muted {
		t.Error("settings của ref phải được giữ nguyên khi resolve")
	}
}
