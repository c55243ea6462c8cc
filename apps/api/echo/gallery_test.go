package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/gallery"
)

const pngBytes = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"

func listGallery(t *testing.T, app testApp, token string) []gallery.Item {
	req, rec := newAuthRequest(http.MethodGet, "/v1/gallery", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var items []gallery.Item
	unmarshal(t, rec, &items)
	return items
}

func Test_galleryApi_like(t *testing.T) {
	tests := []struct {
		name      string
		policy    string
		ids       []string
		wantLikes map[string]int
	}{
		{name: "unlimited", policy: core.PolicyUnlimited, ids: []string{"1", "1", "4"}, wantLikes: map[string]int{"1": 26, "2": 18, "3": 31, "4": 43}},
		{name: "once", policy: core.PolicyOnce, ids: []string{"1", "1", "4"}, wantLikes: map[string]int{"1": 25, "2": 18, "3": 31, "4": 43}},
		{name: "unknown item", policy: core.PolicyUnlimited, ids: []string{"999"}, wantLikes: map[string]int{"1": 24, "2": 18, "3": 31, "4": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup(t, func(conf *core.Config) { conf.Policy.GalleryLike = tt.policy })
			token := getToken(t, app.member, app.conf)

			for _, id := range tt.ids {
				req, rec := newAuthRequest(http.MethodPost, "/v1/gallery/"+id+"/like", token)
				app.ServeHTTP(rec, req)
				require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			}

			likes := make(map[string]int)
			for _, it := range listGallery(t, app, token) {
				likes[it.ID] = it.Likes
			}
			assert.Equal(t, tt.wantLikes, likes)
		})
	}
}

func Test_galleryApi_create(t *testing.T) {
	app := setup(t)
	token := getToken(t, app.member, app.conf)

	missing := core.Notice{Title: "Missing Information", Description: "Please select a photo and add a caption", Variant: core.VariantDestructive}

	tests := []struct {
		name       string
		fields     map[string]string
		files      map[string][2]string
		wantCode   int
		wantNotice *core.Notice
		wantFields map[string]string
	}{
		{
			name: "no file", fields: map[string]string{"caption": "Picnic"},
			wantCode: http.StatusBadRequest, wantNotice: &missing,
			wantFields: map[string]string{"file": "please select a photo"},
		},
		{
			name: "blank caption", fields: map[string]string{"caption": "   "}, files: map[string][2]string{"file": {"a.png", pngBytes}},
			wantCode: http.StatusBadRequest, wantNotice: &missing,
			wantFields: map[string]string{"caption": "this field may not be blank"},
		},
		{
			name: "not an image", fields: map[string]string{"caption": "Notes"}, files: map[string][2]string{"file": {"notes.txt", "hello world"}},
			wantCode: http.StatusBadRequest, wantFields: map[string]string{"file": gallery.ErrNotAnImage.Error()},
		},
		{
			name: "added", fields: map[string]string{"caption": " Picnic day "}, files: map[string][2]string{"file": {"picnic.png", pngBytes}},
			wantCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newMultipartRequest(t, http.MethodPost, "/v1/gallery", token, tt.fields, tt.files)
			app.ServeHTTP(rec, req)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			switch {
			case tt.wantNotice != nil:
				var got noticeErr
				unmarshal(t, rec, &got)
				assert.Equal(t, *tt.wantNotice, got.Notice)
				assert.Equal(t, tt.wantFields, got.Fields)
			case tt.wantFields != nil:
				checkCodeAndData(t, httpTest{wantCode: tt.wantCode, wantData: marchallObj(t, tt.wantFields)}, rec)
			default:
				var res GalleryItemResponse
				unmarshal(t, rec, &res)
				assert.Equal(t, core.NewNotice("Photo Added!", "Your photo has been shared with the circle"), res.Notice)
				assert.Equal(t, "Picnic day", res.Item.Caption)
				assert.Equal(t, app.member.Name, res.Item.Author)
				assert.Equal(t, "just now", res.Item.Timestamp)
				assert.Zero(t, res.Item.Likes)
				require.True(t, strings.HasPrefix(res.Item.ImageURL, gallery.BlobPathPrefix), res.Item.ImageURL)

				items := listGallery(t, app, token)
				require.Len(t, items, 5)
				assert.Equal(t, res.Item.ID, items[0].ID)

				// the photo is served without a token
				req, rec := newRequest(http.MethodGet, res.Item.ImageURL)
				app.ServeHTTP(rec, req)
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
				assert.Equal(t, pngBytes, rec.Body.String())
			}
		})
	}

	t.Run("unknown blob", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, gallery.BlobPathPrefix+"nope")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}, rec)
	})
}
