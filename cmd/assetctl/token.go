package main

import (
	"fmt"
	"strings"

	"storefront/config"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(user, email, role string) error {
	userID, err := uuid.Parse(user)
	if err != nil {
		return errors.Wrap(err, "invalid --user")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	var roles []string
	for r := range strings.SplitSeq(role, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}

	token, err := tokenSvc.GenerateToken(userID, email, roles)
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}
