package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alliance-hq/roster/internal/model"
	"github.com/alliance-hq/roster/internal/service"
)

// WebHandler serves the HTML surface. Authentication here rides on the
// session cookie, not on bearer tokens; the two are invalidated
// independently.
type WebHandler struct {
	auth     *service.AuthService
	sessions *service.SessionService
	members  *service.MemberService
	appName  string
}

func NewWebHandler(auth *service.AuthService, sessions *service.SessionService, members *service.MemberService, appName string) *WebHandler {
	return &WebHandler{auth: auth, sessions: sessions, members: members, appName: appName}
}

func (h *WebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":   "Home",
		"appName": h.appName,
		"user":    h.currentUser(c),
	})
}

func (h *WebHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title":   "About",
		"appName": h.appName,
		"user":    h.currentUser(c),
	})
}

func (h *WebHandler) LoginForm(c *gin.Context) {
	if h.currentUser(c) != nil {
		c.Redirect(http.StatusFound, "/members")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title":   "Login",
		"appName": h.appName,
	})
}

// LoginSubmit establishes a session from form credentials. The failure
// message stays generic regardless of whether the username exists.
func (h *WebHandler) LoginSubmit(c *gin.Context) {
	req := model.LoginRequest{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title":   "Login",
			"appName": h.appName,
			"error":   "invalid username or password",
		})
		return
	}

	cookieValue, err := h.sessions.Establish(user)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title":   "Login",
			"appName": h.appName,
			"error":   "something went wrong, please try again",
		})
		return
	}

	cfg := h.sessions.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, cookieValue, cfg.MaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.Redirect(http.StatusFound, "/members")
}

// Logout destroys the web session only. Any bearer tokens issued to the
// same user remain valid until they expire or are revoked via the API.
func (h *WebHandler) Logout(c *gin.Context) {
	cfg := h.sessions.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}

// Members renders the roster. Requires a session (enforced by
// RequireSession upstream).
func (h *WebHandler) Members(c *gin.Context) {
	user := GetSessionUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "members.html", gin.H{
			"title":   "Members",
			"appName": h.appName,
			"user":    user,
			"error":   "could not load members",
		})
		return
	}

	c.HTML(http.StatusOK, "members.html", gin.H{
		"title":   "Members",
		"appName": h.appName,
		"user":    user,
		"isAdmin": user.Role == model.RoleAdmin,
		"members": members,
	})
}

func (h *WebHandler) currentUser(c *gin.Context) *model.User {
	cookie, err := c.Cookie(h.sessions.CookieConfig().Name)
	if err != nil {
		return nil
	}
	user, err := h.sessions.CurrentUser(c.Request.Context(), cookie)
	if err != nil {
		return nil
	}
	return user
}
