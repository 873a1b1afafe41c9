package userControllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tarkangur/task-project/apierr"
	"github.com/tarkangur/task-project/auth"
	"github.com/tarkangur/task-project/cache"
	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/serializer"
)

// Users are the one family the generic engine does not serve: list/detail
// are readable by any principal, while update/delete are self-only with
// out-of-scope ids surfacing as 404 like every other resource.

const listTTL = 60 * time.Second

// POST /v1/users — public registration. The only unauthenticated write.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in serializer.UserIn
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.Respond(c, apierr.FromBinding(err))
			return
		}
		if in.Password == "" {
			apierr.Respond(c, apierr.Invalid("password", "This field is required."))
			return
		}

		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ? OR email = ?", in.Username, in.Email).
			Count(&count).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		if count > 0 {
			apierr.Respond(c, apierr.Invalid("username", "A user with that username or email already exists."))
			return
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}

		var user models.User
		serializer.UserApply(&user, in)
		user.PasswordHash = hash

		if err := db.Create(&user).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		c.JSON(http.StatusCreated, serializer.UserToExternal(user))
	}
}

// GET /v1/users — cached per principal even though user reads are public
// profile shapes; two principals never share an entry.
func List(db *gorm.DB, responses *cache.Responses) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}

		key := cache.Key("users", "list", principal)
		payload, err := responses.GetOrFetch(c.Request.Context(), key, listTTL, func(ctx context.Context) ([]byte, error) {
			var users []models.User
			if err := db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
				return nil, &apierr.Store{Err: err}
			}
			out := make([]serializer.UserOut, 0, len(users))
			for _, u := range users {
				out = append(out, serializer.UserToExternal(u))
			}
			return json.Marshal(out)
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	}
}

// GET /v1/users/:id — any user's public profile.
func Detail(db *gorm.DB, responses *cache.Responses) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierr.Respond(c, apierr.ErrNotFound)
			return
		}

		key := cache.Key("users", "detail", principal, strconv.FormatUint(id, 10))
		payload, err := responses.GetOrFetch(c.Request.Context(), key, listTTL, func(ctx context.Context) ([]byte, error) {
			var user models.User
			if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apierr.ErrNotFound
				}
				return nil, &apierr.Store{Err: err}
			}
			return json.Marshal(serializer.UserToExternal(user))
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	}
}

// PUT /v1/users/:id — self only. Another user's id is 404, not 403, so the
// response does not confirm whose id it was.
func Update(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || uint(id) != principal {
			apierr.Respond(c, apierr.ErrNotFound)
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", principal).Error; err != nil {
			apierr.Respond(c, apierr.ErrNotFound)
			return
		}

		var in serializer.UserIn
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.Respond(c, apierr.FromBinding(err))
			return
		}

		if in.Username != user.Username || in.Email != user.Email {
			var count int64
			if err := db.Model(&models.User{}).
				Where("(username = ? OR email = ?) AND id <> ?", in.Username, in.Email, user.ID).
				Count(&count).Error; err != nil {
				apierr.Respond(c, &apierr.Store{Err: err})
				return
			}
			if count > 0 {
				apierr.Respond(c, apierr.Invalid("username", "A user with that username or email already exists."))
				return
			}
		}

		serializer.UserApply(&user, in)
		if in.Password != "" {
			hash, err := auth.HashPassword(in.Password)
			if err != nil {
				apierr.Respond(c, &apierr.Store{Err: err})
				return
			}
			user.PasswordHash = hash
		}

		if err := db.Save(&user).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		c.JSON(http.StatusOK, serializer.UserToExternal(user))
	}
}

// DELETE /v1/users/:id — self only; the store cascades to every owned row.
func Delete(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || uint(id) != principal {
			apierr.Respond(c, apierr.ErrNotFound)
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", principal).Error; err != nil {
			apierr.Respond(c, apierr.ErrNotFound)
			return
		}
		if err := db.Delete(&user).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func principalID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
