package resource

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tarkangur/task-project/apierr"
)

// scoped narrows db to the rows of the descriptor's table visible to
// principal. Direct ownership filters on the table's own user_id column;
// transitive ownership joins the parent and filters on the parent's owner.
// Pure query narrowing, no side effects.
func (d Descriptor[M, In, Out]) scoped(db *gorm.DB, principal uint) *gorm.DB {
	if d.Ownership == OwnedDirect {
		return db.Where(d.Table+".user_id = ?", principal)
	}
	join := fmt.Sprintf("JOIN %s ON %s.id = %s.%s",
		d.ParentTable, d.ParentTable, d.Table, d.ParentFK)
	return db.Select(d.Table + ".*").
		Joins(join).
		Where(d.ParentTable+".user_id = ?", principal)
}

// authorizeCreate enforces the write rules for create operations and
// returns the approved parent id for OwnedViaParent resources.
//
// A missing parent reference is a validation failure; a parent owned by a
// different principal is Forbidden. Update and delete need no counterpart:
// their scoped lookup already excludes non-owned targets, surfacing them
// as NotFound.
func (d Descriptor[M, In, Out]) authorizeCreate(db *gorm.DB, principal uint, in In) (uint, error) {
	if d.Ownership == OwnedDirect {
		return 0, nil
	}

	parentID := d.ParentID(in)
	if parentID == 0 {
		return 0, apierr.Invalid(d.ParentField, "This field is required.")
	}

	var owner uint
	row := db.Table(d.ParentTable).Select("user_id").Where("id = ?", parentID).Row()
	if err := row.Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apierr.Invalid(d.ParentField, fmt.Sprintf("Invalid pk %d - object does not exist.", parentID))
		}
		return 0, &apierr.Store{Err: err}
	}
	if owner != principal {
		return 0, apierr.ErrForbidden
	}
	return parentID, nil
}
