package resource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tarkangur/task-project/apierr"
	"github.com/tarkangur/task-project/cache"
)

const jsonContentType = "application/json; charset=utf-8"

// Register wires the five CRUD handlers for d under rg.
func Register[M any, In any, Out any](rg *gin.RouterGroup, d Descriptor[M, In, Out], db *gorm.DB, responses *cache.Responses) {
	rg.GET("/"+d.Name, List(d, db, responses))
	rg.GET("/"+d.Name+"/:id", Detail(d, db, responses))
	rg.POST("/"+d.Name, Create(d, db))
	rg.PUT("/"+d.Name+"/:id", Update(d, db))
	rg.DELETE("/"+d.Name+"/:id", Delete(d, db))
}

// principalID reads the authenticated principal set by the auth middleware.
func principalID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func recordID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apierr.ErrNotFound
	}
	return uint(id), nil
}

// List serves the principal's slice of the collection, read-through cached.
// OwnedViaParent resources accept a ?<parent>Id= filter which joins the
// cache key. Cache hits are served byte-identical to the stored payload.
func List[M any, In any, Out any](d Descriptor[M, In, Out], db *gorm.DB, responses *cache.Responses) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}

		var qualifiers []string
		var parentFilter uint64
		if d.Ownership == OwnedViaParent {
			if raw := c.Query(d.ParentField + "Id"); raw != "" {
				id, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					apierr.Respond(c, apierr.Invalid(d.ParentField+"Id", "A valid integer is required."))
					return
				}
				parentFilter = id
				qualifiers = append(qualifiers, "parent="+raw)
			}
		}

		key := cache.Key(d.Name, "list", principal, qualifiers...)
		payload, err := responses.GetOrFetch(c.Request.Context(), key, d.TTL, func(ctx context.Context) ([]byte, error) {
			var records []M
			q := d.scoped(db.WithContext(ctx), principal)
			if parentFilter != 0 {
				q = q.Where(d.Table+"."+d.ParentFK+" = ?", parentFilter)
			}
			if err := q.Order(d.Table + ".id").Find(&records).Error; err != nil {
				return nil, &apierr.Store{Err: err}
			}
			out := make([]Out, 0, len(records))
			for _, m := range records {
				out = append(out, d.ToExternal(m))
			}
			return json.Marshal(out)
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.Data(http.StatusOK, jsonContentType, payload)
	}
}

// Detail serves a single record through the cache. An id outside the
// principal's scope is NotFound, never Forbidden, so existence of other
// users' resources is not leaked.
func Detail[M any, In any, Out any](d Descriptor[M, In, Out], db *gorm.DB, responses *cache.Responses) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}
		id, err := recordID(c)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		key := cache.Key(d.Name, "detail", principal, strconv.FormatUint(uint64(id), 10))
		payload, err := responses.GetOrFetch(c.Request.Context(), key, d.TTL, func(ctx context.Context) ([]byte, error) {
			var m M
			err := d.scoped(db.WithContext(ctx), principal).
				Where(d.Table+".id = ?", id).
				First(&m).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apierr.ErrNotFound
				}
				return nil, &apierr.Store{Err: err}
			}
			return json.Marshal(d.ToExternal(m))
		})
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.Data(http.StatusOK, jsonContentType, payload)
	}
}

// Create persists a new record after the guard approves it. Direct
// resources get their owner forced to the principal; via-parent resources
// get the approved parent reference. Nothing is written on denial.
func Create[M any, In any, Out any](d Descriptor[M, In, Out], db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}

		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.Respond(c, apierr.FromBinding(err))
			return
		}

		parentID, err := d.authorizeCreate(db, principal, in)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		var m M
		d.Apply(&m, in)
		if d.Ownership == OwnedDirect {
			d.SetOwner(&m, principal)
		} else {
			d.SetParent(&m, parentID)
		}

		if err := db.Create(&m).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		c.JSON(http.StatusCreated, d.ToExternal(m))
	}
}

// Update rewrites the externally settable fields of a record the principal
// owns. The scoped lookup is the authorization: out-of-scope ids are
// NotFound. The owning foreign key is immutable; any parent reference in
// the payload is ignored.
func Update[M any, In any, Out any](d Descriptor[M, In, Out], db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}
		id, err := recordID(c)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		var m M
		err = d.scoped(db, principal).
			Where(d.Table+".id = ?", id).
			First(&m).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierr.Respond(c, apierr.ErrNotFound)
			} else {
				apierr.Respond(c, &apierr.Store{Err: err})
			}
			return
		}

		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			apierr.Respond(c, apierr.FromBinding(err))
			return
		}

		d.Apply(&m, in)
		if err := db.Save(&m).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		c.JSON(http.StatusOK, d.ToExternal(m))
	}
}

// Delete removes a record the principal owns. Permanent; 204 with an empty
// body on success.
func Delete[M any, In any, Out any](d Descriptor[M, In, Out], db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalID(c)
		if !ok {
			apierr.Respond(c, apierr.ErrUnauthenticated)
			return
		}
		id, err := recordID(c)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		var m M
		err = d.scoped(db, principal).
			Where(d.Table+".id = ?", id).
			First(&m).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierr.Respond(c, apierr.ErrNotFound)
			} else {
				apierr.Respond(c, &apierr.Store{Err: err})
			}
			return
		}

		if err := db.Delete(&m).Error; err != nil {
			apierr.Respond(c, &apierr.Store{Err: err})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
