package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImageBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDesignRequestSubmitStoresImages(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "customer@example.com")
	svc := NewDesignRequestService(repository.NewDesignRequestRepository(db))

	img := testImageBase64(t)
	dr, err := svc.Submit(user.ID, DesignRequestIn{
		ContactName:  "Asha Rao",
		ContactEmail: "Asha.Rao@Example.com",
		Description:  "vine-patterned bangle",
		ImagesBase64: []string{img, img},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DesignRequestNew, dr.Status)
	assert.Equal(t, "asha.rao@example.com", dr.ContactEmail)

	var n int64
	require.NoError(t, db.Model(&entity.DesignRequestImage{}).Where("design_request_id = ?", dr.ID).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestDesignRequestSubmitRollsBackOnImageInsertFailure(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "customer@example.com")
	svc := NewDesignRequestService(repository.NewDesignRequestRepository(db))

	// child-row inserts fail once the table is gone; the request must not
	// survive with its reference photos missing
	require.NoError(t, db.Migrator().DropTable(&entity.DesignRequestImage{}))

	_, err := svc.Submit(user.ID, DesignRequestIn{
		ContactName:  "Asha Rao",
		ContactEmail: "asha.rao@example.com",
		Description:  "vine-patterned bangle",
		ImagesBase64: []string{testImageBase64(t)},
	})
	require.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&entity.DesignRequest{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDesignRequestSubmitRejectsBadImage(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "customer@example.com")
	svc := NewDesignRequestService(repository.NewDesignRequestRepository(db))

	_, err := svc.Submit(user.ID, DesignRequestIn{
		ContactName:  "Asha Rao",
		ContactEmail: "asha.rao@example.com",
		Description:  "vine-patterned bangle",
		ImagesBase64: []string{"not base64 at all"},
	})
	assert.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&entity.DesignRequest{}).Count(&n).Error)
	assert.Zero(t, n)
}
