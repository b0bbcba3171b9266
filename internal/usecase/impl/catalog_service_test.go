package impl

import (
	"context"
	"testing"

	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *serviceFixtures) {
	t.Helper()

	fixtures := newServiceFixtures(t)
	svc, err := NewCatalogService(
		fixtures.txManager,
		fixtures.sanitizer,
		fixtures.cfg,
		testLogger(),
	)
	require.NoError(t, err)

	return svc, fixtures
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	svc, _ := createTestCatalogService(t)

	product, err := svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:        "Arepa de Queso",
		Description: "Grilled arepa with melted cheese",
		Price:       350,
		ImageURL:    "https://images.pexels.com/photos/5946431/pexels-photo-5946431.jpeg",
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, int64(350), product.Price)
	assert.Equal(t, 0, product.Stock)

	found, err := svc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, found.Name)
}

func TestCatalogService_CreateProduct_RejectsForeignImageHost(t *testing.T) {
	svc, _ := createTestCatalogService(t)

	testCases := []string{
		"https://evil.example.com/photos/1/pexels-photo-1.jpeg",
		"http://images.pexels.com/photos/1/pexels-photo-1.jpeg",
		"https://images.pexels.com/other/1.jpeg",
		"",
	}

	for _, imageURL := range testCases {
		_, err := svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
			Name:        "Arepa",
			Description: "Some arepa",
			Price:       100,
			ImageURL:    imageURL,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidImageURL, "imageURL=%q", imageURL)
	}
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	svc, _ := createTestCatalogService(t)
	imageURL := "https://images.pexels.com/photos/1/pexels-photo-1.jpeg"

	_, err := svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name: "", Description: "desc", Price: 100, ImageURL: imageURL,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name: "Arepa", Description: "desc", Price: 0, ImageURL: imageURL,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	negative := -1
	_, err = svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name: "Arepa", Description: "desc", Price: 100, ImageURL: imageURL, Stock: &negative,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// A name that is only markup sanitizes down to nothing.
	_, err = svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name: "<b></b>", Description: "desc", Price: 100, ImageURL: imageURL,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_PartialPatch(t *testing.T) {
	svc, fixtures := createTestCatalogService(t)
	product := fixtures.seedProductRow("Arepa Pelua", 620)

	newPrice := int64(700)
	updated, err := svc.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(700), updated.Price)
	// Untouched fields survive the patch.
	assert.Equal(t, "Arepa Pelua", updated.Name)
	assert.Equal(t, product.ImageURL, updated.ImageURL)
}

func TestCatalogService_UpdateProduct_RejectsBadPatch(t *testing.T) {
	svc, fixtures := createTestCatalogService(t)
	product := fixtures.seedProductRow("Arepa Domino", 450)

	badURL := "https://elsewhere.test/img.png"
	_, err := svc.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{
		ImageURL: &badURL,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImageURL)

	zero := int64(0)
	_, err = svc.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{
		Price: &zero,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// The failed patch must not have changed the stored row.
	found, err := svc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(450), found.Price)
	assert.Equal(t, product.ImageURL, found.ImageURL)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	svc, fixtures := createTestCatalogService(t)
	product := fixtures.seedProductRow("Arepa Dulce", 300)

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID))

	_, err := svc.GetProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	err = svc.DeleteProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProducts_NewestFirst(t *testing.T) {
	svc, fixtures := createTestCatalogService(t)
	fixtures.seedProductRow("First", 100)
	fixtures.seedProductRow("Second", 200)

	products, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Second", products[0].Name)
	assert.Equal(t, "First", products[1].Name)
}
