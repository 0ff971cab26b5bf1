package api

import (
	"github.com/fitlogue/fitlogue/pkg/internal/http/exts"
	"github.com/fitlogue/fitlogue/pkg/internal/security"
	"github.com/fitlogue/fitlogue/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func doJoin(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=4,max=128"`
		Name     string `json:"name" validate:"required,max=64"`
		Nick     string `json:"nick" validate:"required,max=64"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := srv.Accounts.Join(c.UserContext(), services.JoinRequest{
		Email:    data.Email,
		Password: data.Password,
		Name:     data.Name,
		Nick:     data.Nick,
	})
	if err != nil {
		return err
	}

	return exts.Respond(c, user)
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := srv.Accounts.Login(c.UserContext(), data.Email, data.Password)
	if err != nil {
		return err
	}

	token, err := security.IssueToken(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Respond(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func getProfilePage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	view, err := srv.Composer.ProfilePage(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}

func getSettingPage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	view, err := srv.Composer.SettingPage(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}

func getCreatorApplyPage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	view, err := srv.Composer.CreatorApplyPage(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}

func submitCreatorApplication(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var data struct {
		Height    int    `json:"height" validate:"required,gt=0"`
		Weight    int    `json:"weight" validate:"required,gt=0"`
		Instagram string `json:"instagram" validate:"required,max=64"`
		Job       string `json:"job" validate:"max=64"`
		IntroMsg  string `json:"intro_msg" validate:"max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := srv.Accounts.SubmitCreatorApplication(c.UserContext(), userID, services.CreatorApplication{
		Height:    data.Height,
		Weight:    data.Weight,
		Instagram: data.Instagram,
		Job:       data.Job,
		IntroMsg:  data.IntroMsg,
	})
	if err != nil {
		return err
	}

	return exts.Respond(c, user)
}

func getUserMyPage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	view, err := srv.Composer.UserMyPage(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}
