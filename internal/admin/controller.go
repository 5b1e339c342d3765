package admin

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"blossom/internal/domain"
	"blossom/internal/session"
	"blossom/internal/store"
	"blossom/internal/validate"
)

// State is the controller's position in the admin workflow.
type State int

const (
	StateLoggedOut State = iota
	StateListLoading
	StateListReady
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged-out"
	case StateListLoading:
		return "list-loading"
	case StateListReady:
		return "list-ready"
	case StateEditing:
		return "editing"
	}
	return "unknown"
}

// Store is the remote catalog the controller mutates.
type Store interface {
	ListAll(ctx context.Context, token string) ([]domain.Product, error)
	Create(ctx context.Context, token string, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, token string, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, token string, id int64) error
}

// Notifier surfaces non-blocking user notifications (the toast analog).
type Notifier interface {
	Notify(level, title, detail string)
}

// Confirmer is the blocking user-decision point before a destructive request.
type Confirmer interface {
	Confirm(prompt string) bool
}

var (
	ErrNotEditing   = errors.New("admin: no draft open")
	ErrNotReady     = errors.New("admin: product list not loaded")
	ErrEmptyToken   = errors.New("admin: token must not be empty")
	ErrLoggedOut    = errors.New("admin: not authenticated")
	ErrUnknownField = errors.New("admin: unknown draft field")
)

// Controller mediates between the session gate, the remote store and the
// edit-form state. It is the single owner of the in-memory product list and
// the draft; both change only on completed store calls or direct user input.
type Controller struct {
	store   Store
	sess    *session.Session
	notify  Notifier
	confirm Confirmer

	state    State
	products []domain.Product
	draft    *domain.Product

	// Monotonic guard so a stale overlapping list response can never
	// overwrite a newer one.
	listVersion uint64
}

func New(st Store, sess *session.Session, n Notifier, cf Confirmer) *Controller {
	return &Controller{store: st, sess: sess, notify: n, confirm: cf, state: StateLoggedOut}
}

func (c *Controller) State() State { return c.state }

// Products returns a copy of the committed list.
func (c *Controller) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Draft returns a copy of the open draft, if any.
func (c *Controller) Draft() (domain.Product, bool) {
	if c.draft == nil {
		return domain.Product{}, false
	}
	return *c.draft, true
}

// Login stores the token and triggers the initial list fetch. The token is
// not verified here; validity is discovered on the first gated request.
func (c *Controller) Login(ctx context.Context, token string) error {
	tok, ok := validate.Token(token)
	if !ok {
		return ErrEmptyToken
	}
	if err := c.sess.Save(tok); err != nil {
		return err
	}
	c.state = StateListLoading
	c.notify.Notify("success", "Вход выполнен", "Добро пожаловать в админ-панель")
	c.Reload(ctx)
	return nil
}

// Resume re-enters the workflow with a token persisted by an earlier run.
func (c *Controller) Resume(ctx context.Context) error {
	if !c.sess.IsAuthenticated() {
		return ErrLoggedOut
	}
	c.state = StateListLoading
	c.Reload(ctx)
	return nil
}

// Logout clears the session from any state, discarding list and draft.
func (c *Controller) Logout() {
	_ = c.sess.Clear()
	c.products = nil
	c.draft = nil
	c.state = StateLoggedOut
	c.notify.Notify("success", "Выход выполнен", "")
}

// Reload fetches the full product list from the store. On transport failure
// the prior list is kept and the error is surfaced; nothing retries
// automatically.
func (c *Controller) Reload(ctx context.Context) {
	if c.state == StateLoggedOut {
		return
	}
	c.listVersion++
	version := c.listVersion

	rows, err := c.store.ListAll(ctx, c.sess.Token())
	if err != nil {
		if errors.Is(err, store.ErrAccessDenied) {
			c.forceLogout()
			return
		}
		c.notify.Notify("error", "Ошибка", "Не удалось загрузить товары")
		return
	}
	if version != c.listVersion {
		// A newer reload has been issued; this response is stale.
		return
	}
	c.products = rows
	if c.state == StateListLoading {
		c.state = StateListReady
	}
}

// OpenEditor opens a draft: a copy of an existing product, or the default
// draft when creating. Mutations apply to the draft only.
func (c *Controller) OpenEditor(p *domain.Product) error {
	if c.state != StateListReady {
		return ErrNotReady
	}
	var d domain.Product
	if p == nil {
		d = domain.DefaultDraft()
	} else {
		d = *p
	}
	c.draft = &d
	c.state = StateEditing
	return nil
}

// SetField applies a single form-field change to the draft. Parsing is
// permissive: an unparsable price coerces to 0, an unknown category falls
// back to the default instead of rejecting the edit.
func (c *Controller) SetField(field, value string) error {
	if c.state != StateEditing || c.draft == nil {
		return ErrNotEditing
	}
	switch field {
	case "name":
		c.draft.Name = strings.TrimSpace(value)
	case "price":
		c.draft.Price = validate.Price(value)
	case "category":
		if cat, ok := validate.Category(value); ok {
			c.draft.Category = cat
		} else {
			c.draft.Category = "mono"
		}
	case "image_url":
		c.draft.ImageURL = strings.TrimSpace(value)
	case "description":
		c.draft.Description = value
	case "composition":
		c.draft.Composition = value
	case "is_available":
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			c.draft.IsAvailable = b
		}
	default:
		return ErrUnknownField
	}
	return nil
}

// saveIntent makes the create-vs-update decision explicit instead of
// branching on the sentinel id at the call site.
type saveIntent struct {
	update bool
	id     int64
}

func intentFor(d domain.Product) saveIntent {
	if d.IsNew() {
		return saveIntent{}
	}
	return saveIntent{update: true, id: d.ID}
}

// Save commits the draft. Success refreshes the list and closes the editor;
// a 403 overrides everything and forces logout; any other failure keeps the
// draft untouched so the user may retry.
func (c *Controller) Save(ctx context.Context) error {
	if c.state != StateEditing || c.draft == nil {
		return ErrNotEditing
	}

	var err error
	intent := intentFor(*c.draft)
	if intent.update {
		_, err = c.store.Update(ctx, c.sess.Token(), *c.draft)
	} else {
		_, err = c.store.Create(ctx, c.sess.Token(), *c.draft)
	}
	if err != nil {
		if errors.Is(err, store.ErrAccessDenied) {
			c.forceLogout()
			return err
		}
		c.notify.Notify("error", "Ошибка", "Не удалось сохранить товар")
		return err
	}

	if intent.update {
		c.notify.Notify("success", "Успех", "Товар обновлен")
	} else {
		c.notify.Notify("success", "Успех", "Товар добавлен")
	}
	c.draft = nil
	c.state = StateListLoading
	c.Reload(ctx)
	return nil
}

// CloseEditor abandons the draft without saving.
func (c *Controller) CloseEditor() {
	if c.state != StateEditing {
		return
	}
	c.draft = nil
	c.state = StateListReady
}

// DeleteProduct asks for confirmation first; without it no request is ever
// issued and the list stays unchanged.
func (c *Controller) DeleteProduct(ctx context.Context, id int64) error {
	if c.state != StateListReady {
		return ErrNotReady
	}
	if !c.confirm.Confirm("Удалить этот товар?") {
		return nil
	}
	if err := c.store.Delete(ctx, c.sess.Token(), id); err != nil {
		if errors.Is(err, store.ErrAccessDenied) {
			c.forceLogout()
			return err
		}
		c.notify.Notify("error", "Ошибка", "Не удалось удалить товар")
		return err
	}
	c.notify.Notify("success", "Товар удален", "")
	c.Reload(ctx)
	return nil
}

// forceLogout handles an authorization rejection: the token is invalid, so
// the session is destroyed no matter what state the workflow was in.
func (c *Controller) forceLogout() {
	_ = c.sess.Clear()
	c.products = nil
	c.draft = nil
	c.state = StateLoggedOut
	c.notify.Notify("error", "Ошибка доступа", "Неверный токен администратора")
}
