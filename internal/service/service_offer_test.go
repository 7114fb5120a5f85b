// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/media"
	"github.com/MKhiriev/go-resale-market/internal/mock"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/validators"
	"github.com/MKhiriev/go-resale-market/models"
)

func newTestOfferSvc(t *testing.T, ctrl *gomock.Controller) (*offerService, *mock.MockOfferRepository, *mock.MockStore) {
	t.Helper()
	offers := mock.NewMockOfferRepository(ctrl)
	mediaStore := mock.NewMockStore(ctrl)

	svc := NewOfferService(offers, mediaStore, validators.NewMarketValidator(), testMediaConfig, logger.Nop()).(*offerService)
	return svc, offers, mediaStore
}

func testFields() models.OfferFields {
	return models.OfferFields{
		Title:       "Jean",
		Description: "Blue jean",
		Price:       20,
		Brand:       "Levi's",
		Size:        "M",
		Condition:   "Good",
		Color:       "Blue",
		City:        "Paris",
	}
}

// testForm is testFields as it arrives from a client.
func testForm() models.OfferForm {
	return models.OfferForm{
		Title:       "Jean",
		Description: "Blue jean",
		Price:       "20",
		Brand:       "Levi's",
		Size:        "M",
		Condition:   "Good",
		Color:       "Blue",
		City:        "Paris",
	}
}

var (
	testPicture = &models.Upload{Filename: "jean.png", ContentType: "image/png", Data: pngBytes}
	oldHandle   = models.MediaHandle{PublicID: "market/offers/o-1/old", Folder: "market/offers/o-1"}
	newHandle   = models.MediaHandle{PublicID: "market/offers/o-1/new", Folder: "market/offers/o-1"}
	destroyedOK = models.DestroyResult{Result: models.DestroyResultOK}
	emptyFolder = models.FolderListing{Resources: []models.MediaHandle{}}
)

// ── Create ───────────────────────────────────────────────────────────────────

func TestOfferService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, mediaStore := newTestOfferSvc(t, ctrl)

	var offerID string
	gomock.InOrder(
		offers.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o models.Offer) (models.Offer, error) {
				offerID = o.OfferID
				assert.NotEmpty(t, o.OfferID)
				assert.Equal(t, "owner-1", o.OwnerID)
				assert.Equal(t, testFields().Details(), o.Details)
				assert.Nil(t, o.Image)
				o.Status = models.OfferStatusPending
				return o, nil
			},
		),
		mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in models.UploadInput) (models.MediaHandle, error) {
				assert.Equal(t, "market/offers/"+offerID, in.Folder)
				return newHandle, nil
			},
		),
		offers.EXPECT().AttachImage(gomock.Any(), gomock.Any(), newHandle).DoAndReturn(
			func(_ context.Context, id string, h models.MediaHandle) (models.Offer, error) {
				assert.Equal(t, offerID, id)
				return models.Offer{OfferID: id, Image: &h, Status: models.OfferStatusMediaAttached}, nil
			},
		),
	)

	got, err := svc.Create(context.Background(), testFields(), testPicture, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusMediaAttached, got.Status)
	require.NotNil(t, got.Image)
	assert.Equal(t, newHandle, *got.Image)
}

func TestOfferService_Create_UploadFailsRemovesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, mediaStore := newTestOfferSvc(t, ctrl)

	offers.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o models.Offer) (models.Offer, error) { return o, nil },
	)
	mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.MediaHandle{}, media.ErrUnavailable)
	offers.EXPECT().DeleteOffer(gomock.Any(), gomock.Any()).Return(models.Offer{}, nil)

	_, err := svc.Create(context.Background(), testFields(), testPicture, "owner-1")

	assert.ErrorIs(t, err, ErrMediaAttachFailed)
	assert.ErrorIs(t, err, media.ErrUnavailable)
}

func TestOfferService_Create_AttachFailsRollsBackMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, mediaStore := newTestOfferSvc(t, ctrl)

	offers.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o models.Offer) (models.Offer, error) { return o, nil },
	)
	mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(newHandle, nil)
	offers.EXPECT().AttachImage(gomock.Any(), gomock.Any(), newHandle).Return(models.Offer{}, store.ErrExecutingStatement)
	mediaStore.EXPECT().Destroy(gomock.Any(), newHandle.PublicID).Return(destroyedOK, nil)
	// the pending record cannot be removed either: the sweeper will do it
	offers.EXPECT().DeleteOffer(gomock.Any(), gomock.Any()).Return(models.Offer{}, errors.New("db gone"))

	_, err := svc.Create(context.Background(), testFields(), testPicture, "owner-1")

	assert.ErrorIs(t, err, ErrMediaAttachFailed)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestOfferService_Create_StoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, _ := newTestOfferSvc(t, ctrl)

	offers.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(models.Offer{}, store.ErrExecutingStatement)

	_, err := svc.Create(context.Background(), testFields(), testPicture, "owner-1")
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestOfferService_Create_NoPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestOfferSvc(t, ctrl)

	_, err := svc.Create(context.Background(), testFields(), nil, "owner-1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestOfferService_Update_FieldsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, _ := newTestOfferSvc(t, ctrl)

	current := models.Offer{OfferID: "o-1", OwnerID: "owner-1", Image: &oldHandle}
	offers.EXPECT().GetOffer(gomock.Any(), "o-1").Return(current, nil)
	offers.EXPECT().UpdateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o models.Offer) (models.Offer, error) {
			assert.Equal(t, "requester-2", o.OwnerID, "editing hands the offer to the requester")
			assert.Equal(t, "Jean", o.Title)
			o.Image = &oldHandle
			return o, nil
		},
	)

	got, err := svc.Update(context.Background(), "o-1", testForm(), nil, "requester-2")

	require.NoError(t, err)
	assert.Equal(t, "requester-2", got.OwnerID)
	assert.Equal(t, &oldHandle, got.Image)
}

func TestOfferService_Update_ReplacesPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, mediaStore := newTestOfferSvc(t, ctrl)

	gomock.InOrder(
		offers.EXPECT().GetOffer(gomock.Any(), "o-1").Return(models.Offer{OfferID: "o-1", Image: &oldHandle}, nil),
		offers.EXPECT().UpdateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o models.Offer) (models.Offer, error) { return o, nil },
		),
		mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(newHandle, nil),
		offers.EXPECT().AttachImage(gomock.Any(), "o-1", newHandle).Return(models.Offer{OfferID: "o-1", Image: &newHandle}, nil),
		mediaStore.EXPECT().Destroy(gomock.Any(), oldHandle.PublicID).Return(destroyedOK, nil),
	)

	got, err := svc.Update(context.Background(), "o-1", testForm(), testPicture, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, &newHandle, got.Image)
}

func TestOfferService_Update_FailedUploadKeepsOldPicture(t *testing.T) {
	tests := []struct {
		name  string
		setup func(offers *mock.MockOfferRepository, mediaStore *mock.MockStore)
	}{
		{
			name: "upload fails",
			setup: func(_ *mock.MockOfferRepository, mediaStore *mock.MockStore) {
				mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.MediaHandle{}, media.ErrUnavailable)
			},
		},
		{
			name: "attach fails",
			setup: func(offers *mock.MockOfferRepository, mediaStore *mock.MockStore) {
				mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(newHandle, nil)
				offers.EXPECT().AttachImage(gomock.Any(), "o-1", newHandle).Return(models.Offer{}, store.ErrExecutingStatement)
				// удаляется только новая картинка
				mediaStore.EXPECT().Destroy(gomock.Any(), newHandle.PublicID).Return(destroyedOK, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, offers, mediaStore := newTestOfferSvc(t, ctrl)

			offers.EXPECT().GetOffer(gomock.Any(), "o-1").Return(models.Offer{OfferID: "o-1", Image: &oldHandle}, nil)
			offers.EXPECT().UpdateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o models.Offer) (models.Offer, error) { return o, nil },
			)
			tt.setup(offers, mediaStore)
			mediaStore.EXPECT().Destroy(gomock.Any(), oldHandle.PublicID).Times(0)

			_, err := svc.Update(context.Background(), "o-1", testForm(), testPicture, "owner-1")
			assert.ErrorIs(t, err, ErrMediaAttachFailed)
		})
	}
}

func TestOfferService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, _ := newTestOfferSvc(t, ctrl)

	offers.EXPECT().GetOffer(gomock.Any(), "missing").Return(models.Offer{}, store.ErrOfferNotFound)

	_, err := svc.Update(context.Background(), "missing", testForm(), testPicture, "owner-1")
	assert.ErrorIs(t, err, store.ErrOfferNotFound)
}

func TestOfferService_Update_NotFoundBeforeInvalidForm(t *testing.T) {
	tests := []struct {
		name string
		form func(f *models.OfferForm)
	}{
		{name: "empty title", form: func(f *models.OfferForm) { f.Title = "" }},
		{name: "price not a number", form: func(f *models.OfferForm) { f.Price = "cheap" }},
		{name: "price out of range", form: func(f *models.OfferForm) { f.Price = "10001" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, offers, _ := newTestOfferSvc(t, ctrl)

			offers.EXPECT().GetOffer(gomock.Any(), "missing").Return(models.Offer{}, store.ErrOfferNotFound)

			form := testForm()
			tt.form(&form)
			_, err := svc.Update(context.Background(), "missing", form, nil, "u-1")

			assert.ErrorIs(t, err, store.ErrOfferNotFound)
			assert.NotErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestOfferService_Update_InvalidForm(t *testing.T) {
	tests := []struct {
		name    string
		form    func(f *models.OfferForm)
		picture *models.Upload
		want    error
	}{
		{name: "empty title", form: func(f *models.OfferForm) { f.Title = "" }, want: validators.ErrInvalidTitle},
		{name: "price not a number", form: func(f *models.OfferForm) { f.Price = "cheap" }, want: validators.ErrInvalidPrice},
		{name: "price out of range", form: func(f *models.OfferForm) { f.Price = "10001" }, want: validators.ErrInvalidPrice},
		{name: "picture not an image", form: func(*models.OfferForm) {}, picture: &models.Upload{Data: []byte("plain text")}, want: validators.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, offers, _ := newTestOfferSvc(t, ctrl)

			// без записи в хранилище
			offers.EXPECT().GetOffer(gomock.Any(), "o-1").Return(models.Offer{OfferID: "o-1", Image: &oldHandle}, nil)

			form := testForm()
			tt.form(&form)
			_, err := svc.Update(context.Background(), "o-1", form, tt.picture, "owner-1")

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestOfferService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		destroy     models.DestroyResult
		destroyErr  error
		listing     models.FolderListing
		wantPicture bool
		wantFolder  bool
	}{
		{name: "everything removed", destroy: destroyedOK, listing: emptyFolder, wantPicture: true, wantFolder: true},
		{name: "picture not found", destroy: models.DestroyResult{Result: models.DestroyResultNotFound}, listing: emptyFolder, wantFolder: true},
		{name: "media store down", destroyErr: media.ErrUnavailable, listing: emptyFolder, wantFolder: true},
		{name: "folder still used", destroy: destroyedOK, listing: models.FolderListing{Resources: []models.MediaHandle{newHandle}, TotalCount: 1}, wantPicture: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, offers, mediaStore := newTestOfferSvc(t, ctrl)

			offers.EXPECT().DeleteOffer(gomock.Any(), "o-1").Return(models.Offer{OfferID: "o-1", Image: &oldHandle}, nil)
			mediaStore.EXPECT().Destroy(gomock.Any(), oldHandle.PublicID).Return(tt.destroy, tt.destroyErr)
			mediaStore.EXPECT().ListFolder(gomock.Any(), "market/offers/o-1").Return(tt.listing, nil)
			if tt.wantFolder {
				mediaStore.EXPECT().DeleteFolder(gomock.Any(), "market/offers/o-1").Return(nil)
			}

			got, err := svc.Delete(context.Background(), "o-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantPicture, got.PictureDeleted)
			assert.Equal(t, tt.wantFolder, got.FolderDeleted)
		})
	}
}

func TestOfferService_Delete_NotFoundSkipsMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, _ := newTestOfferSvc(t, ctrl)

	offers.EXPECT().DeleteOffer(gomock.Any(), "missing").Return(models.Offer{}, store.ErrOfferNotFound)

	_, err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrOfferNotFound)
}

// ── SweepPending ─────────────────────────────────────────────────────────────

func TestOfferService_SweepPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, mediaStore := newTestOfferSvc(t, ctrl)
	cutoff := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	offers.EXPECT().ListPendingOffers(gomock.Any(), cutoff).Return([]models.Offer{
		{OfferID: "p-1"}, {OfferID: "p-2"}, {OfferID: "p-3"},
	}, nil)

	// p-1 has an orphaned picture
	mediaStore.EXPECT().ListFolder(gomock.Any(), "market/offers/p-1").Return(
		models.FolderListing{Resources: []models.MediaHandle{oldHandle}, TotalCount: 1}, nil)
	mediaStore.EXPECT().Destroy(gomock.Any(), oldHandle.PublicID).Return(destroyedOK, nil)
	mediaStore.EXPECT().ListFolder(gomock.Any(), "market/offers/p-1").Return(emptyFolder, nil)
	mediaStore.EXPECT().DeleteFolder(gomock.Any(), "market/offers/p-1").Return(nil)
	offers.EXPECT().DeleteOffer(gomock.Any(), "p-1").Return(models.Offer{OfferID: "p-1"}, nil)

	// p-2 was already removed concurrently
	mediaStore.EXPECT().ListFolder(gomock.Any(), "market/offers/p-2").Return(emptyFolder, nil).Times(2)
	mediaStore.EXPECT().DeleteFolder(gomock.Any(), "market/offers/p-2").Return(nil)
	offers.EXPECT().DeleteOffer(gomock.Any(), "p-2").Return(models.Offer{}, store.ErrOfferNotFound)

	// p-3 cannot be deleted
	mediaStore.EXPECT().ListFolder(gomock.Any(), "market/offers/p-3").Return(models.FolderListing{}, media.ErrNotFound).Times(2)
	offers.EXPECT().DeleteOffer(gomock.Any(), "p-3").Return(models.Offer{}, store.ErrExecutingStatement)

	removed, err := svc.SweepPending(context.Background(), cutoff)

	assert.Equal(t, 1, removed)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestOfferService_SweepPending_LookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, offers, _ := newTestOfferSvc(t, ctrl)

	offers.EXPECT().ListPendingOffers(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	removed, err := svc.SweepPending(context.Background(), time.Now())
	assert.Zero(t, removed)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
