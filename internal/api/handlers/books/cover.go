package books

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shravya312/Online-book-Store/internal/api/httpx"
	storebooks "github.com/shravya312/Online-book-Store/internal/store/books"
	"github.com/shravya312/Online-book-Store/internal/store/listcache"
	storage "github.com/shravya312/Online-book-Store/internal/storage/s3"
)

var coverExt = map[string]string{
	"image/webp": "webp",
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// UploadCoverHandler handles POST /api/books/{id}/cover: uploads a cover
// image to object storage and stores its URL into the record's imageUrl.
func UploadCoverHandler(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := r.PathValue("id")
		if id == "" {
			httpx.Error(w, http.StatusBadRequest, "Missing book id")
			return
		}

		// The record must exist before we accept an upload for it.
		current, err := storebooks.FetchByID(ctx, db, id)
		if err != nil {
			writeErr(w, err, "Error fetching book")
			return
		}

		// max 10MB for images
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			httpx.Error(w, http.StatusBadRequest, "Failed to parse upload form")
			return
		}
		file, header, err := r.FormFile("cover")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Missing cover file")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		ext, ok := coverExt[contentType]
		if !ok {
			httpx.Error(w, http.StatusBadRequest, "Cover must be webp, jpeg, or png")
			return
		}

		media, err := storage.NewMediaClient(ctx)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Cover storage is not configured")
			return
		}

		objectKey := storage.CoverObjectKey(current.ID, current.Title, ext)
		if err := uploadCover(ctx, media, objectKey, file, contentType, header.Size); err != nil {
			log.Printf("[books] cover upload failed: %v", err)
			httpx.Error(w, http.StatusInternalServerError, "Error uploading cover")
			return
		}

		// The durable object key is what gets stored; presigned URLs expire
		// in minutes, so GET {id}/cover signs a fresh one per read instead.
		// Persist through the regular partial-update path so timestamps and
		// validation behave exactly like any other edit.
		updated, err := storebooks.Update(ctx, db, id, storebooks.UpdateBookDTO{ImageURL: &objectKey})
		if err != nil {
			_ = media.DeleteObject(ctx, objectKey)
			writeErr(w, err, "Error updating book")
			return
		}

		if err := listcache.BumpVersion(ctx, rdb); err != nil {
			log.Printf("[books] cache bump failed: %v", err)
		}

		httpx.OKMessage(w, http.StatusOK, "Cover uploaded successfully", updated)
	}
}

// GetCoverHandler handles GET /api/books/{id}/cover: resolves the stored
// cover reference and redirects to it. Object keys get a fresh presigned
// URL per read; externally hosted covers redirect as-is.
func GetCoverHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := r.PathValue("id")
		if id == "" {
			httpx.Error(w, http.StatusBadRequest, "Missing book id")
			return
		}

		b, err := storebooks.FetchByID(ctx, db, id)
		if err != nil {
			writeErr(w, err, "Error fetching book")
			return
		}
		if b.ImageURL == "" {
			httpx.Error(w, http.StatusNotFound, "Cover not found")
			return
		}
		if strings.HasPrefix(b.ImageURL, "http://") || strings.HasPrefix(b.ImageURL, "https://") {
			http.Redirect(w, r, b.ImageURL, http.StatusTemporaryRedirect)
			return
		}

		media, err := storage.NewMediaClient(ctx)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Cover storage is not configured")
			return
		}
		downloadURL, err := media.PresignDownload(ctx, b.ImageURL)
		if err != nil {
			log.Printf("[books] cover presign failed: %v", err)
			httpx.Error(w, http.StatusInternalServerError, "Error fetching cover")
			return
		}
		http.Redirect(w, r, downloadURL, http.StatusTemporaryRedirect)
	}
}

func uploadCover(ctx context.Context, media *storage.MediaClient, objectKey string, file multipart.File, contentType string, contentLength int64) error {
	uploadURL, err := media.PresignUpload(ctx, objectKey, contentType)
	if err != nil {
		return fmt.Errorf("generate presigned upload url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return fmt.Errorf("create put request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", strconv.FormatInt(contentLength, 10))
	req.ContentLength = contentLength // ensure no chunked encoding

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("put to object storage failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("object storage upload failed status=%d", resp.StatusCode)
	}
	return nil
}
