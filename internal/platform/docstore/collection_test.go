package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	tables "restaurantBackoffice/internal/modules/tables/domain"
	"restaurantBackoffice/internal/shared/apperr"
)

func sampleDocument() *Document {
	doc := NewDocument()
	doc.Tables = []tables.Table{
		{ID: "1", Number: 1, Capacity: 2, Status: tables.TableStatusAvailable, Location: "Window"},
		{ID: "2", Number: 2, Capacity: 4, Status: tables.TableStatusAvailable, Location: "Window"},
		{ID: "3", Number: 3, Capacity: 4, Status: tables.TableStatusAvailable, Location: "Center"},
	}
	return doc
}

func TestCollectionFind(t *testing.T) {
	doc := sampleDocument()

	table, idx, err := Tables.Find(doc, "2")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, 2, table.Number)

	_, idx, err = Tables.Find(doc, "missing")
	require.True(t, errors.Is(err, apperr.ErrNotFound))
	require.Equal(t, -1, idx)
	require.EqualError(t, err, "Table not found")
}

func TestCollectionAllIsCopy(t *testing.T) {
	doc := sampleDocument()

	all := Tables.All(doc)
	all[0].Status = tables.TableStatusOccupied

	require.Equal(t, tables.TableStatusAvailable, doc.Tables[0].Status)
}

func TestCollectionMutations(t *testing.T) {
	doc := sampleDocument()

	Tables.Append(doc, tables.Table{ID: "4", Number: 4})
	require.Len(t, doc.Tables, 4)

	Tables.Replace(doc, 0, tables.Table{ID: "1", Number: 10})
	require.Equal(t, 10, doc.Tables[0].Number)

	Tables.RemoveAt(doc, 1)
	ids := make([]string, 0, len(doc.Tables))
	for _, table := range doc.Tables {
		ids = append(ids, table.ID)
	}
	require.Equal(t, []string{"1", "3", "4"}, ids)

	found, ok := Tables.FindBy(doc, func(t tables.Table) bool { return t.Number == 4 })
	require.True(t, ok)
	require.Equal(t, "4", found.ID)
}

func TestUpdateSavesOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, sampleDocument()))

	boom := errors.New("boom")
	err := Update(ctx, store, func(doc *Document) error {
		doc.Tables[0].Status = tables.TableStatusOccupied
		return boom
	})
	require.ErrorIs(t, err, boom)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, tables.TableStatusAvailable, doc.Tables[0].Status)

	require.NoError(t, Update(ctx, store, func(doc *Document) error {
		doc.Tables[0].Status = tables.TableStatusOccupied
		return nil
	}))
	doc, err = store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, tables.TableStatusOccupied, doc.Tables[0].Status)
}
