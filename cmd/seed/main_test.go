package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type stubLists struct {
	failBook uint
	saved    []entities.ReadingList
}

func (s *stubLists) CreateReadingList(_ context.Context, entry *entities.ReadingList) error {
	if entry.BookID == s.failBook {
		return errors.New("database is locked")
	}
	s.saved = append(s.saved, *entry)
	return nil
}

func TestAddReadingList(t *testing.T) {
	user := &entities.User{ID: 7, Username: "alice"}

	t.Run("counts every stored entry", func(t *testing.T) {
		lists := &stubLists{}
		created := addReadingList(context.Background(), lists, user, []uint{11, 12, 13}, map[int]string{
			0: entities.ReadingStatusReading,
			2: entities.ReadingStatusCompleted,
		})

		assert.Equal(t, 2, created)
		assert.Len(t, lists.saved, 2)
		for _, entry := range lists.saved {
			assert.Equal(t, uint(7), entry.UserID)
		}
	})

	t.Run("failed writes are not counted", func(t *testing.T) {
		lists := &stubLists{failBook: 12}
		created := addReadingList(context.Background(), lists, user, []uint{11, 12, 13}, map[int]string{
			0: entities.ReadingStatusReading,
			1: entities.ReadingStatusWantToRead,
			2: entities.ReadingStatusCompleted,
		})

		assert.Equal(t, 2, created)
	})

	t.Run("books that were not saved are skipped", func(t *testing.T) {
		lists := &stubLists{}
		created := addReadingList(context.Background(), lists, user, []uint{11, 0}, map[int]string{
			0: entities.ReadingStatusReading,
			1: entities.ReadingStatusReading,
			5: entities.ReadingStatusReading,
		})

		assert.Equal(t, 1, created)
		assert.Equal(t, uint(11), lists.saved[0].BookID)
	})
}
