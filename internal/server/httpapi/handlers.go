package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"newssense/internal/common"
	"newssense/internal/server/services"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// loginRequest accepts the account name under either field; Login treats the
// identifier as username-or-email.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: invalid request body", common.ErrValidation))
		return
	}

	result, err := s.users.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	body := gin.H{"message": "signup successful, check your email for the verification code"}
	if result.Token != "" {
		body["token"] = result.Token
		body["userId"] = result.UserID
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleVerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: invalid request body", common.ErrValidation))
		return
	}

	if err := s.users.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: invalid request body", common.ErrValidation))
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" || req.Password == "" {
		s.respondError(c, fmt.Errorf("%w: username or email and password are required", common.ErrValidation))
		return
	}

	result, err := s.users.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token, "userId": result.UserID})
}

func (s *Server) handleNews(c *gin.Context) {
	articles, err := s.news.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"totalResults": len(articles),
		"articles":     articles,
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: invalid request body", common.ErrValidation))
		return
	}
	if req.Text == "" {
		s.respondError(c, fmt.Errorf("%w: text is required", common.ErrValidation))
		return
	}

	label, err := s.sentiment.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sentiment": label})
}

func (s *Server) handleSaveNews(c *gin.Context) {
	var req services.SavedArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: invalid request body", common.ErrValidation))
		return
	}

	list, err := s.articles.Save(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "news saved", "savedNews": list})
}

func (s *Server) handleSavedNews(c *gin.Context) {
	list, err := s.articles.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedNews": list})
}

func (s *Server) handleDeleteNews(c *gin.Context) {
	list, err := s.articles.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "news deleted", "savedNews": list})
}
