// File: services/broadcast/controller.go
package broadcast

import (
	"errors"
	"fmt"
	"sync"

	"classboard/models"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound   = errors.New("broadcast template not found")
	ErrUnknownQuickAction = errors.New("unknown quick action")
)

// DefaultTemplates seed the saved list.
func DefaultTemplates() []models.BroadcastTemplate {
	return []models.BroadcastTemplate{
		{ID: "1", BtnName: "常用1", Title: "全班集合", Subtitle: "請到走廊排隊"},
		{ID: "2", BtnName: "常用2", Title: "下課休息", Subtitle: "記得喝水上廁所"},
		{ID: "3", BtnName: "常用3", Title: "準備上課", Subtitle: "請回到座位拿出課本"},
	}
}

// QuickActions are the toolbar shortcuts.
func QuickActions() []models.QuickAction {
	return []models.QuickAction{
		{Label: "回教室", Title: "全班集合", Subtitle: "請立刻回到教室"},
		{Label: "走廊排隊", Title: "走廊排隊", Subtitle: "安靜、迅速、確實"},
		{Label: "移動/集合", Title: "移動/集合", Subtitle: "請攜帶相關用具"},
	}
}

// Controller holds the active broadcast and the saved template list. The two
// are independent: the active broadcast is a copy, so editing or removing the
// template it came from does not change what is on screen.
type Controller struct {
	mu        sync.RWMutex
	active    *models.BroadcastTemplate
	templates []models.BroadcastTemplate
}

func NewController() *Controller {
	return &Controller{templates: DefaultTemplates()}
}

// Active returns a copy of the active broadcast, or nil.
func (c *Controller) Active() *models.BroadcastTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.active == nil {
		return nil
	}
	cp := *c.active
	return &cp
}

// Publish replaces whatever is active.
func (c *Controller) Publish(t models.BroadcastTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = &t
}

// QuickAction publishes an ad-hoc broadcast and returns it.
func (c *Controller) QuickAction(title, subtitle string) models.BroadcastTemplate {
	t := models.BroadcastTemplate{ID: models.QuickBroadcastID, Title: title, Subtitle: subtitle}
	c.Publish(t)
	return t
}

// PublishPreset publishes the preset quick action with the given label.
func (c *Controller) PublishPreset(label string) (models.BroadcastTemplate, error) {
	for _, qa := range QuickActions() {
		if qa.Label == label {
			return c.QuickAction(qa.Title, qa.Subtitle), nil
		}
	}
	return models.BroadcastTemplate{}, fmt.Errorf("%w: %s", ErrUnknownQuickAction, label)
}

// PublishTemplate publishes a saved template by id.
func (c *Controller) PublishTemplate(id string) (models.BroadcastTemplate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return models.BroadcastTemplate{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	t := c.templates[idx]
	c.active = &t
	return t, nil
}

// Dismiss clears the active broadcast.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
}

// Templates returns the saved list in order.
func (c *Controller) Templates() []models.BroadcastTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.BroadcastTemplate(nil), c.templates...)
}

// AddTemplate appends a new saved template.
func (c *Controller) AddTemplate(req models.TemplateRequest) models.BroadcastTemplate {
	t := models.BroadcastTemplate{
		ID:       uuid.New().String(),
		BtnName:  req.BtnName,
		Title:    req.Title,
		Subtitle: req.Subtitle,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates = append(c.templates, t)
	return t
}

// UpdateTemplate rewrites a saved template in place, keeping its id and position.
func (c *Controller) UpdateTemplate(id string, req models.TemplateRequest) (models.BroadcastTemplate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return models.BroadcastTemplate{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	c.templates[idx] = models.BroadcastTemplate{ID: id, BtnName: req.BtnName, Title: req.Title, Subtitle: req.Subtitle}
	return c.templates[idx], nil
}

// RemoveTemplate deletes a saved template.
func (c *Controller) RemoveTemplate(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	c.templates = append(c.templates[:idx:idx], c.templates[idx+1:]...)
	return nil
}

// Reset restores the default templates and clears the active broadcast.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
	c.templates = DefaultTemplates()
}

// indexOf must be called with c.mu held.
func (c *Controller) indexOf(id string) int {
	for i, t := range c.templates {
		if t.ID == id {
			return i
		}
	}
	return -1
}
