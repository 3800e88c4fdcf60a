package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorozco/pedidos-api/internal/application/dto"
	"github.com/dorozco/pedidos-api/internal/application/usecase"
)

func TestCategoryCreate_MismoNombreDevuelveLaMismaFila(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	first, err := uc.Create(dto.CreateCategoryRequest{Name: "Food"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateCategoryRequest{Name: "Food"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.categories, 1)
}

func TestCategoryList_OrdenadoPorNombre(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	for _, name := range []string{"Pickup", "Delivery", "Food"} {
		_, err := uc.Create(dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Delivery", list[0].Name)
	assert.Equal(t, "Food", list[1].Name)
	assert.Equal(t, "Pickup", list[2].Name)
}

func TestCategoryUpdate_Renombra(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Refrigerator"})
	require.NoError(t, err)

	newName := "Heating"
	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Heating", out.Name)

	missing, err := uc.Update(9999, dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryDelete(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Food"})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
