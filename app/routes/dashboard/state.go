package dashboard

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"aidhivi-dashboard/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	sidebarOpen   = "open"
	sidebarClosed = "closed"
)

// Selection is the dashboard view state. It lives in the page URL, so each
// transition returns a new value instead of mutating the receiver.
type Selection struct {
	ClassID     models.ClassID
	SidebarOpen bool
	Tab         models.Tab
}

// DefaultSelection is the state of a freshly opened dashboard.
func DefaultSelection() Selection {
	return Selection{
		ClassID:     models.Class9A,
		SidebarOpen: true,
		Tab:         models.TabOverview,
	}
}

func (s Selection) SelectClass(id models.ClassID) Selection {
	s.ClassID = id
	return s
}

func (s Selection) ToggleSidebar(open bool) Selection {
	s.SidebarOpen = open
	return s
}

func (s Selection) SelectTab(tab models.Tab) Selection {
	s.Tab = tab
	return s
}

// Query encodes the selection as a query string.
func (s Selection) Query() string {
	sidebar := sidebarClosed
	if s.SidebarOpen {
		sidebar = sidebarOpen
	}
	v := url.Values{}
	v.Set("class", string(s.ClassID))
	v.Set("tab", string(s.Tab))
	v.Set("sidebar", sidebar)
	return v.Encode()
}

// URL is the dashboard link that renders this selection.
func (s Selection) URL() string {
	return "/dashboard?" + s.Query()
}

type selectionQuery struct {
	Class   string `query:"class" validate:"omitempty,classid"`
	Tab     string `query:"tab" validate:"omitempty,tab"`
	Sidebar string `query:"sidebar" validate:"omitempty,oneof=open closed"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("classid", func(fl validator.FieldLevel) bool {
		return models.ClassID(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("tab", func(fl validator.FieldLevel) bool {
		return models.Tab(fl.Field().String()).Valid()
	})
	return v
}

// ParseSelection reads the selection from the request query. Absent fields
// keep their defaults; values the UI never produces are a bad request.
func ParseSelection(c *fiber.Ctx) (Selection, error) {
	var q selectionQuery
	if err := c.QueryParser(&q); err != nil {
		return Selection{}, fiber.NewError(fiber.StatusBadRequest, "Invalid dashboard query")
	}
	return selectionFromQuery(q)
}

func selectionFromQuery(q selectionQuery) (Selection, error) {
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return Selection{}, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Unknown %s %q", strings.ToLower(fe.Field()), fe.Value()))
		}
		return Selection{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sel := DefaultSelection()
	if q.Class != "" {
		sel = sel.SelectClass(models.ClassID(q.Class))
	}
	if q.Tab != "" {
		sel = sel.SelectTab(models.Tab(q.Tab))
	}
	if q.Sidebar != "" {
		sel = sel.ToggleSidebar(q.Sidebar == sidebarOpen)
	}
	return sel, nil
}
