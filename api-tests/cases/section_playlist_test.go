package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"loke_store_tests/utils"

	"github.com/stretchr/testify/assert"
)

// waitForHealth chờ server sẵn sàng trước khi chạy test
func waitForHealth(baseURL string, attempts int, interval time.Duration, t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	for i := 0; i < attempts; i++ {
		resp, err := client.Get(baseURL + "/system/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(interval)
	}
	t.Skipf("⚠️ Server không sẵn sàng tại %s, bỏ qua bộ test", baseURL)
}

// parseData parse response JSON chuẩn {code, message, data, status} và trả về data
func parseData(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	err := json.Unmarshal(body, &result)
	assert.NoError(t, err, "Phải parse được JSON response")
	data, _ := result["data"].(map[string]interface{})
	return data
}

// TestSectionPlaylistModule kiểm tra toàn bộ vòng đời của section và playlist video:
// tạo, thêm/gỡ/sắp xếp video, cờ isUsed, endpoint public cho storefront.
func TestSectionPlaylistModule(t *testing.T) {
	baseURL := "http://localhost:8080/api/v1"
	waitForHealth(baseURL, 10, 1*time.Second, t)

	adminToken := os.Getenv("API_TEST_TOKEN")
	if adminToken == "" {
		t.Skip("⚠️ Thiếu API_TEST_TOKEN, bỏ qua bộ test")
	}

	client := utils.NewHTTPClient(baseURL, 10)
	client.SetToken(adminToken)

	var videoAID, videoBID string
	var sectionID, section2ID string
	var refALocalID string

	// Dọn dẹp khi test kết thúc, kể cả khi fail giữa chừng
	t.Cleanup(func() {
		if sectionID != "" {
			client.DELETE("/content/sections/delete-by-id/" + sectionID)
		}
		if section2ID != "" {
			client.DELETE("/content/sections/delete-by-id/" + section2ID)
		}
		if videoAID != "" {
			client.DELETE("/content/videos/delete-by-id/" + videoAID)
		}
		if videoBID != "" {
			client.DELETE("/content/videos/delete-by-id/" + videoBID)
		}
	})

	t.Run("🎬 Chuẩn bị video trong thư viện", func(t *testing.T) {
		stamp := time.Now().UnixNano()

		resp, body, err := client.POST("/content/videos/insert-one", map[string]interface{}{
			"title":     fmt.Sprintf("Video A %d", stamp),
			"sourceUrl": "https://cdn.example.com/a.mp4",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo video A: %v", err)
		}
		assert.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
		if data := parseData(t, body); data != nil {
			videoAID, _ = data["id"].(string)
		}
		assert.NotEmpty(t, videoAID, "Video A phải có id")

		resp, body, err = client.POST("/content/videos/insert-one", map[string]interface{}{
			"title":        fmt.Sprintf("Video B %d", stamp),
			"sourceUrl":    "https://cdn.example.com/b.mp4",
			"optimizedUrl": "https://cdn.example.com/b-opt.mp4",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo video B: %v", err)
		}
		assert.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
		if data := parseData(t, body); data != nil {
			videoBID, _ = data["id"].(string)
		}
		assert.NotEmpty(t, videoBID, "Video B phải có id")
	})

	t.Run("📐 Tạo section", func(t *testing.T) {
		resp, body, err := client.POST("/content/sections/insert-one", map[string]interface{}{
			"title":      fmt.Sprintf("Section Test %d", time.Now().UnixNano()),
			"layoutType": "grid",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo section: %v", err)
		}
		assert.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
		if data := parseData(t, body); data != nil {
			sectionID, _ = data["id"].(string)
			// Section mới phải được gán vào cuối với playlist rỗng
			videos, _ := data["videos"].([]interface{})
			assert.Empty(t, videos, "Section mới phải có playlist rỗng")
		}
		assert.NotEmpty(t, sectionID, "Section phải có id")

		resp, body, err = client.POST("/content/sections/insert-one", map[string]interface{}{
			"title":      fmt.Sprintf("Section Test 2 %d", time.Now().UnixNano()),
			"layoutType": "slider",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo section 2: %v", err)
		}
		assert.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
		if data := parseData(t, body); data != nil {
			section2ID, _ = data["id"].(string)
		}
	})

	t.Run("➕ Thêm video vào section", func(t *testing.T) {
		resp, body, err := client.POST("/content/sections/"+sectionID+"/videos", map[string]interface{}{
			"videoId": videoAID,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi thêm video A: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		if data := parseData(t, body); data != nil {
			videos, _ := data["videos"].([]interface{})
			if assert.Len(t, videos, 1, "Section phải có đúng 1 video") {
				ref, _ := videos[0].(map[string]interface{})
				refALocalID, _ = ref["localId"].(string)
				assert.NotEmpty(t, refALocalID, "Video ref phải có localId")
				assert.Equal(t, float64(0), ref["order"], "Video đầu tiên phải có order 0")

				// Settings mặc định: muted, controls, playsInline bật
				settings, _ := ref["settings"].(map[string]interface{})
				assert.Equal(t, true, settings["muted"])
				assert.Equal(t, true, settings["controls"])
				assert.Equal(t, false, settings["autoplay"])
			}
		}

		// Thêm trùng video phải bị từ chối với 409
		resp, _, err = client.POST("/content/sections/"+sectionID+"/videos", map[string]interface{}{
			"videoId": videoAID,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi thêm video trùng: %v", err)
		}
		assert.Equal(t, http.StatusConflict, resp.StatusCode, "Video trùng phải trả về 409")

		// Thêm video B vào cuối
		resp, body, err = client.POST("/content/sections/"+sectionID+"/videos", map[string]interface{}{
			"videoId": videoBID,
			"title":   "Tiêu đề override",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi thêm video B: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		if data := parseData(t, body); data != nil {
			videos, _ := data["videos"].([]interface{})
			if assert.Len(t, videos, 2) {
				ref, _ := videos[1].(map[string]interface{})
				assert.Equal(t, float64(1), ref["order"], "Video thứ hai phải có order 1")
			}
		}
	})

	t.Run("🚩 Cờ isUsed bật sau khi thêm vào section", func(t *testing.T) {
		resp, body, err := client.GET("/content/videos/find-by-id/" + videoAID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc video A: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		if data := parseData(t, body); data != nil {
			assert.Equal(t, true, data["isUsed"], "Video trong section phải có isUsed=true")
		}
	})

	t.Run("🔀 Sắp xếp lại video trong section", func(t *testing.T) {
		// Đọc section để lấy localId của cả 2 ref
		resp, body, err := client.GET("/content/sections/find-by-id/" + sectionID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc section: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := parseData(t, body)
		videos, _ := data["videos"].([]interface{})
		if !assert.Len(t, videos, 2) {
			return
		}
		first, _ := videos[0].(map[string]interface{})
		second, _ := videos[1].(map[string]interface{})

		// Đảo thứ tự: ref thứ hai lên đầu
		resp, body, err = client.PUT("/content/sections/"+sectionID+"/videos/reorder", map[string]interface{}{
			"items": []map[string]interface{}{
				{"localId": second["localId"], "order": 0},
				{"localId": first["localId"], "order": 1},
			},
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi reorder video: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		if data := parseData(t, body); data != nil {
			videos, _ := data["videos"].([]interface{})
			if assert.Len(t, videos, 2) {
				newFirst, _ := videos[0].(map[string]interface{})
				assert.Equal(t, second["localId"], newFirst["localId"], "Ref thứ hai phải lên đầu sau reorder")
				assert.Equal(t, float64(0), newFirst["order"])
			}
		}
	})

	t.Run("✏️ Cập nhật video ref", func(t *testing.T) {
		resp, body, err := client.PUT("/content/sections/"+sectionID+"/videos/"+refALocalID, map[string]interface{}{
			"title": "Tiêu đề mới",
			"settings": map[string]interface{}{
				"autoplay": true,
			},
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi cập nhật video ref: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		if data := parseData(t, body); data != nil {
			videos, _ := data["videos"].([]interface{})
			for _, v := range videos {
				ref, _ := v.(map[string]interface{})
				if ref["localId"] != refALocalID {
					continue
				}
				assert.Equal(t, "Tiêu đề mới", ref["title"])
				settings, _ := ref["settings"].(map[string]interface{})
				assert.Equal(t, true, settings["autoplay"], "autoplay trong patch phải được merge")
				assert.Equal(t, true, settings["muted"], "muted không có trong patch phải giữ nguyên")
			}
		}
	})

	t.Run("🔁 isUsed giữ nguyên khi video còn ở section khác", func(t *testing.T) {
		// Thêm video A vào section 2, rồi gỡ khỏi section 1
		resp, _, err := client.POST("/content/sections/"+section2ID+"/videos", map[string]interface{}{
			"videoId": videoAID,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi thêm video A vào section 2: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _, err = client.DELETE("/content/sections/" + sectionID + "/videos/" + refALocalID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi gỡ video A khỏi section 1: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Vẫn còn section 2 tham chiếu nên isUsed phải còn true
		resp, body, err := client.GET("/content/videos/find-by-id/" + videoAID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc video A: %v", err)
		}
		if data := parseData(t, body); data != nil {
			assert.Equal(t, true, data["isUsed"], "isUsed phải giữ nguyên khi video còn ở section khác")
		}

		// Gỡ localId không tồn tại phải trả về 404
		resp, _, err = client.DELETE("/content/sections/" + sectionID + "/videos/" + refALocalID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi gỡ localId không tồn tại: %v", err)
		}
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "localId đã gỡ phải trả về 404")
	})

	t.Run("🗑️ Xóa section hạ cờ isUsed của tham chiếu cuối", func(t *testing.T) {
		resp, _, err := client.DELETE("/content/sections/delete-by-id/" + section2ID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi xóa section 2: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		section2ID = ""

		resp, body, err := client.GET("/content/videos/find-by-id/" + videoAID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc video A: %v", err)
		}
		if data := parseData(t, body); data != nil {
			assert.Equal(t, false, data["isUsed"], "Hết tham chiếu thì isUsed phải về false")
		}
	})

	t.Run("🌐 Endpoint public không cần token", func(t *testing.T) {
		publicClient := utils.NewHTTPClient(baseURL, 10)

		resp, body, err := publicClient.GET("/public/sections")
		if err != nil {
			t.Fatalf("❌ Lỗi khi gọi endpoint public: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Endpoint public phải truy cập được không cần token")

		var result map[string]interface{}
		err = json.Unmarshal(body, &result)
		assert.NoError(t, err, "Phải parse được JSON response")

		// Section chỉ còn video B (video A đã bị gỡ) nên vẫn xuất hiện;
		// mọi section trả về đều phải có ít nhất một video phát được
		sections, _ := result["data"].([]interface{})
		for _, s := range sections {
			section, _ := s.(map[string]interface{})
			videos, _ := section["videos"].([]interface{})
			assert.NotEmpty(t, videos, "Section public không được rỗng video")
			for _, v := range videos {
				video, _ := v.(map[string]interface{})
				assert.NotEmpty(t, video["url"], "Video public phải có URL phát được")
				assert.NotEmpty(t, video["title"], "Video public phải có tiêu đề")
			}
		}
	})
}
