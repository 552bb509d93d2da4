package api

import (
	"context"  // Lookup context
	"errors"   // Sentinel errors
	"net/http" // HTTP status codes
	"strconv"  // String to int conversion
	"strings"  // Whitespace trimming

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ParseID converts an identifier from a path or form. Anything that is not
// a positive integer reports ok == false, which means "no existing row".
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// errPasswordRequired is returned by an add path that got no password
var errPasswordRequired = errors.New("password required")

// saver describes how one entity is looked up, updated and added
type saver struct {
	entity string                                            // Entity name for messages and logs
	exists func(ctx context.Context, id int64) (bool, error) // Whether id names a row
	update func(ctx context.Context, id int64) error         // Update path
	add    func(ctx context.Context) (int64, error)          // Create path
}

// save updates the row named by raw when it exists and adds a new row
// otherwise. A malformed raw id goes to the add path, never to an error.
func (sv saver) save(c *gin.Context, raw string) {
	ctx := c.Request.Context()
	id, ok := ParseID(raw)
	if ok {
		found, err := sv.exists(ctx, id)
		if err != nil {
			internalError(c, "Failed to load "+sv.entity, err)
			return
		}
		ok = found // Unknown ids are added as new rows
	}
	if ok {
		if err := sv.update(ctx, id); err != nil {
			writeFailed(c, "Failed to update "+sv.entity, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"entity": sv.entity, // Entity type
			"id":     id,        // Row ID
		}).Info("Updated")
		c.JSON(http.StatusOK, gin.H{"id": id, "created": false})
		return
	}
	newID, err := sv.add(ctx)
	if errors.Is(err, errPasswordRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required for new accounts"})
		return
	}
	if err != nil {
		writeFailed(c, "Failed to add "+sv.entity, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"entity":       sv.entity, // Entity type
		"id":           newID,     // Assigned ID
		"requested_id": raw,       // Identifier the caller sent
	}).Info("Added")
	c.JSON(http.StatusCreated, gin.H{"id": newID, "created": true})
}

// internalError logs err and answers 500
func internalError(c *gin.Context, msg string, err error) {
	logrus.WithFields(logrus.Fields{
		"path":  c.FullPath(), // Route
		"error": err.Error(),  // Error message
	}).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// writeFailed logs a failed insert or update. Constraint violations are the
// usual cause, so the caller gets a 400.
func writeFailed(c *gin.Context, msg string, err error) {
	logrus.WithFields(logrus.Fields{
		"path":  c.FullPath(), // Route
		"error": err.Error(),  // Error message
	}).Warn(msg)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// badRequest answers 400 for a request that failed binding
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
}

// pathID reads :id for lookups. Malformed ids match no row.
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, ok := ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	}
	return id, ok
}
