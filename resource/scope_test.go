package resource

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tarkangur/task-project/apierr"
	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/serializer"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Post{}, &models.Comment{},
		&models.Album{}, &models.Photo{}, &models.Todo{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func commentDescriptor() Descriptor[models.Comment, serializer.CommentIn, serializer.CommentOut] {
	return Descriptor[models.Comment, serializer.CommentIn, serializer.CommentOut]{
		Name:        "comments",
		Table:       "comments",
		Ownership:   OwnedViaParent,
		ParentTable: "posts",
		ParentFK:    "post_id",
		ParentField: "post",
		ToExternal:  serializer.CommentToExternal,
		Apply:       serializer.CommentApply,
		ParentID:    func(in serializer.CommentIn) uint { return in.Post },
		SetParent:   func(m *models.Comment, id uint) { m.PostID = id },
		TTL:         time.Minute,
	}
}

func todoDescriptor() Descriptor[models.Todo, serializer.TodoIn, serializer.TodoOut] {
	return Descriptor[models.Todo, serializer.TodoIn, serializer.TodoOut]{
		Name:       "todos",
		Table:      "todos",
		Ownership:  OwnedDirect,
		ToExternal: serializer.TodoToExternal,
		Apply:      serializer.TodoApply,
		SetOwner:   func(m *models.Todo, owner uint) { m.UserID = owner },
	}
}

func TestScopedDirectOwnership(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, db.Create(&models.Todo{UserID: alice.ID, Title: "a1"}).Error)
	require.NoError(t, db.Create(&models.Todo{UserID: bob.ID, Title: "b1"}).Error)

	d := todoDescriptor()

	var mine []models.Todo
	require.NoError(t, d.scoped(db, alice.ID).Find(&mine).Error)
	require.Len(t, mine, 1)
	assert.Equal(t, "a1", mine[0].Title)
}

func TestScopedTransitiveOwnership(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	alicePost := models.Post{UserID: alice.ID, Title: "t", Body: "b"}
	bobPost := models.Post{UserID: bob.ID, Title: "t", Body: "b"}
	require.NoError(t, db.Create(&alicePost).Error)
	require.NoError(t, db.Create(&bobPost).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: alicePost.ID, Name: "n", Email: "n@example.com", Body: "on alice"}).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: bobPost.ID, Name: "n", Email: "n@example.com", Body: "on bob"}).Error)

	d := commentDescriptor()

	var visible []models.Comment
	require.NoError(t, d.scoped(db, alice.ID).Find(&visible).Error)
	require.Len(t, visible, 1)
	assert.Equal(t, alicePost.ID, visible[0].PostID)

	// Detail of the other user's comment resolves to nothing, not an error
	// distinguishing it from a missing row.
	var m models.Comment
	err := d.scoped(db, alice.ID).Where("comments.id = ?", 0).First(&m).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestAuthorizeCreate(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	alicePost := models.Post{UserID: alice.ID, Title: "t", Body: "b"}
	require.NoError(t, db.Create(&alicePost).Error)

	d := commentDescriptor()

	t.Run("own parent is approved", func(t *testing.T) {
		id, err := d.authorizeCreate(db, alice.ID, serializer.CommentIn{Post: alicePost.ID})
		require.NoError(t, err)
		assert.Equal(t, alicePost.ID, id)
	})

	t.Run("foreign parent is forbidden", func(t *testing.T) {
		_, err := d.authorizeCreate(db, bob.ID, serializer.CommentIn{Post: alicePost.ID})
		assert.ErrorIs(t, err, apierr.ErrForbidden)
	})

	t.Run("missing parent reference is a validation failure", func(t *testing.T) {
		_, err := d.authorizeCreate(db, alice.ID, serializer.CommentIn{})
		var v *apierr.Validation
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields, "post")
	})

	t.Run("unknown parent id is a validation failure", func(t *testing.T) {
		_, err := d.authorizeCreate(db, alice.ID, serializer.CommentIn{Post: 9999})
		var v *apierr.Validation
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields, "post")
	})

	t.Run("direct ownership needs no parent check", func(t *testing.T) {
		id, err := todoDescriptor().authorizeCreate(db, alice.ID, serializer.TodoIn{Title: "x"})
		require.NoError(t, err)
		assert.Zero(t, id)
	})
}
