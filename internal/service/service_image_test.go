package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/mock"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/models"
)

type imageMocks struct {
	books  *mock.MockBookRepository
	images *mock.MockImageRepository
	blobs  *mock.MockBlobStorage
}

func newTestImageSvc(t *testing.T, ctrl *gomock.Controller) (*imageService, imageMocks) {
	t.Helper()
	m := imageMocks{
		books:  mock.NewMockBookRepository(ctrl),
		images: mock.NewMockImageRepository(ctrl),
		blobs:  mock.NewMockBlobStorage(ctrl),
	}
	storages := &store.Storages{
		BookRepository:  m.books,
		ImageRepository: m.images,
		BlobStorage:     m.blobs,
	}

	svc := NewImageService(storages, &sequenceIDs{}, logger.Nop()).(*imageService)
	svc.now = fixedClock

	return svc, m
}

func pngUpload(name string) models.ImageUpload {
	return models.ImageUpload{
		BookID:      "book-1",
		FileName:    name,
		ContentType: "image/png",
		Size:        3,
		Content:     strings.NewReader("png"),
	}
}

// ─────────────────────────────────────────────
// UploadImage
// ─────────────────────────────────────────────

func TestUploadImage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()
	upload := pngUpload("../../etc/My Cover.PNG")

	gomock.InOrder(
		m.books.EXPECT().FindBookByID(ctx, "book-1").Return(testBook(), nil),
		m.blobs.EXPECT().Put(ctx, "book-1/id-1/My_Cover.PNG", upload.Content, int64(3), "image/png").Return(nil),
		m.images.EXPECT().CreateImage(ctx, models.Image{
			FileID:       "id-1",
			FileName:     "My_Cover.PNG",
			CreatedDate:  fixedNow,
			S3ObjectName: "book-1/id-1/My_Cover.PNG",
			UserID:       "user-1",
			BookID:       "book-1",
		}).DoAndReturn(func(_ context.Context, i models.Image) (models.Image, error) { return i, nil }),
	)

	image, err := svc.UploadImage(ctx, testUser(), upload)
	require.NoError(t, err)
	assert.Equal(t, "book-1/id-1/My_Cover.PNG", image.S3ObjectName)
}

func TestUploadImage_RejectsBeforeTouchingStores(t *testing.T) {
	tests := []struct {
		name    string
		upload  models.ImageUpload
		wantErr error
	}{
		{name: "unsupported extension", upload: pngUpload("notes.txt"), wantErr: ErrUnsupportedFileType},
		{name: "no extension", upload: pngUpload("cover"), wantErr: ErrUnsupportedFileType},
		{name: "empty name", upload: pngUpload(""), wantErr: ErrMissingFile},
		{name: "no content", upload: models.ImageUpload{BookID: "book-1", FileName: "a.png"}, wantErr: ErrMissingFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestImageSvc(t, ctrl)

			_, err := svc.UploadImage(context.Background(), testUser(), tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadImage_UnknownBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()

	m.books.EXPECT().FindBookByID(ctx, "book-1").Return(models.Book{}, store.ErrBookNotFound)

	_, err := svc.UploadImage(ctx, testUser(), pngUpload("a.png"))
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestUploadImage_BlobFailureWritesNoRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()

	m.books.EXPECT().FindBookByID(ctx, "book-1").Return(testBook(), nil)
	m.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

	_, err := svc.UploadImage(ctx, testUser(), pngUpload("a.png"))
	assert.Error(t, err)
}

func TestUploadImage_RowFailureRemovesBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()

	m.books.EXPECT().FindBookByID(ctx, "book-1").Return(testBook(), nil)
	m.blobs.EXPECT().Put(ctx, "book-1/id-1/a.png", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.images.EXPECT().CreateImage(ctx, gomock.Any()).Return(models.Image{}, errors.New("db down"))
	m.blobs.EXPECT().Delete(ctx, "book-1/id-1/a.png").Return(nil)

	_, err := svc.UploadImage(ctx, testUser(), pngUpload("a.png"))
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// DeleteImage
// ─────────────────────────────────────────────

func storedImage() models.Image {
	return models.Image{
		FileID:       "file-1",
		FileName:     "a.png",
		CreatedDate:  fixedNow,
		S3ObjectName: "book-1/file-1/a.png",
		UserID:       "user-1",
		BookID:       "book-1",
	}
}

func TestDeleteImage_RemovesRowThenBlobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		m.images.EXPECT().FindImageByID(ctx, "file-1").Return(storedImage(), nil),
		m.images.EXPECT().DeleteImage(ctx, "file-1").Return(nil),
		m.blobs.EXPECT().DeletePrefix(ctx, "book-1/file-1/").Return(1, nil),
	)

	image, err := svc.DeleteImage(ctx, testUser(), "book-1", "file-1")
	require.NoError(t, err)
	assert.Equal(t, "file-1", image.FileID)
}

func TestDeleteImage_Rejections(t *testing.T) {
	other := testUser()
	other.ID = "user-2"

	tests := []struct {
		name    string
		user    models.User
		bookID  string
		found   models.Image
		findErr error
		wantErr error
	}{
		{name: "unknown image", user: testUser(), bookID: "book-1", findErr: store.ErrImageNotFound, wantErr: ErrImageNotFound},
		{name: "image of another book", user: testUser(), bookID: "book-2", found: storedImage(), wantErr: ErrImageNotFound},
		{name: "not the uploader", user: other, bookID: "book-1", found: storedImage(), wantErr: ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestImageSvc(t, ctrl)
			ctx := context.Background()

			m.images.EXPECT().FindImageByID(ctx, "file-1").Return(tt.found, tt.findErr)

			_, err := svc.DeleteImage(ctx, tt.user, tt.bookID, "file-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteImage_BlobFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()

	m.images.EXPECT().FindImageByID(ctx, "file-1").Return(storedImage(), nil)
	m.images.EXPECT().DeleteImage(ctx, "file-1").Return(nil)
	m.blobs.EXPECT().DeletePrefix(ctx, "book-1/file-1/").Return(0, errors.New("s3 down"))

	_, err := svc.DeleteImage(ctx, testUser(), "book-1", "file-1")
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// ReconcileBlobs
// ─────────────────────────────────────────────

func TestReconcileBlobs_RemovesOldUnreferenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()
	old := fixedNow.Add(-2 * time.Hour)

	m.images.EXPECT().ListObjectNames(ctx).Return([]string{"b/f1/a.png"}, nil)
	m.blobs.EXPECT().List(ctx, "").Return([]models.BlobInfo{
		{Key: "b/f1/a.png", LastModified: old},
		{Key: "b/f2/orphan.png", LastModified: old},
		{Key: "b/f3/fresh.png", LastModified: fixedNow.Add(-time.Minute)},
	}, nil)
	m.blobs.EXPECT().Delete(ctx, "b/f2/orphan.png").Return(nil)

	removed, err := svc.ReconcileBlobs(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestReconcileBlobs_CollectsDeleteErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()
	old := fixedNow.Add(-2 * time.Hour)

	m.images.EXPECT().ListObjectNames(ctx).Return(nil, nil)
	m.blobs.EXPECT().List(ctx, "").Return([]models.BlobInfo{
		{Key: "x/1/a.png", LastModified: old},
		{Key: "x/2/b.png", LastModified: old},
	}, nil)
	m.blobs.EXPECT().Delete(ctx, "x/1/a.png").Return(errors.New("denied"))
	m.blobs.EXPECT().Delete(ctx, "x/2/b.png").Return(nil)

	removed, err := svc.ReconcileBlobs(ctx, time.Hour)
	require.Error(t, err)
	assert.Equal(t, 1, removed)
}

func TestReconcileBlobs_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestImageSvc(t, ctrl)
	ctx := context.Background()

	m.images.EXPECT().ListObjectNames(ctx).Return(nil, errors.New("db down"))

	_, err := svc.ReconcileBlobs(ctx, time.Hour)
	assert.Error(t, err)
}
