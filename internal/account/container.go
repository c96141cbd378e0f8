package account

import (
	"fmt"
	"time"

	sqlaccount "github.com/klwxsrx/tagabukid-property/data/sql/account"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/form"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/service"
	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
	"github.com/klwxsrx/tagabukid-property/internal/account/infra/http"
	"github.com/klwxsrx/tagabukid-property/internal/account/infra/postgrest"
	"github.com/klwxsrx/tagabukid-property/internal/account/infra/sql"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	commoncmd "github.com/klwxsrx/tagabukid-property/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/tagabukid-property/internal/pkg/http"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkgenv "github.com/klwxsrx/tagabukid-property/pkg/env"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
	pkglazy "github.com/klwxsrx/tagabukid-property/pkg/lazy"
	pkglog "github.com/klwxsrx/tagabukid-property/pkg/log"
	pkgsql "github.com/klwxsrx/tagabukid-property/pkg/sql"
	pkgtime "github.com/klwxsrx/tagabukid-property/pkg/time"
)

const (
	ProfileStoragePostgREST = "postgrest"
	ProfileStorageSQL       = "sql"
)

type DependencyContainer struct {
	FormRegistry   pkglazy.Loader[form.Registry]
	AccountService pkglazy.Loader[service.Account]

	ProfileFormHandler       pkglazy.Loader[pkghttp.Handler]
	EditProfileHandler       pkglazy.Loader[pkghttp.Handler]
	CancelProfileEditHandler pkglazy.Loader[pkghttp.Handler]
	SubmitProfileHandler     pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	renderer pkglazy.Loader[view.Renderer],
	permissions pkglazy.Loader[auth.PermissionService],
	clock pkglazy.Loader[pkgtime.Clock],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	profileRepo := profileRepositoryProvider(db, dbMigrations, httpClients)
	formRegistry := formRegistryProvider(profileRepo, clock, logger)
	accountService := accountServiceProvider(formRegistry, profileRepo, permissions)

	return &DependencyContainer{
		FormRegistry:   formRegistry,
		AccountService: accountService,
		ProfileFormHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewProfileFormHandler(accountService.MustLoad(), renderer.MustLoad()), nil
		}),
		EditProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewEditProfileHandler(accountService.MustLoad()), nil
		}),
		CancelProfileEditHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewCancelProfileEditHandler(accountService.MustLoad()), nil
		}),
		SubmitProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewSubmitProfileHandler(accountService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	authenticated := pkghttp.WithAuthenticationRequirement()
	registry.Register(c.ProfileFormHandler.MustLoad(), authenticated)
	registry.Register(c.EditProfileHandler.MustLoad(), authenticated)
	registry.Register(c.CancelProfileEditHandler.MustLoad(), authenticated)
	registry.Register(c.SubmitProfileHandler.MustLoad(), authenticated)
}

func profileRepositoryProvider(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
) pkglazy.Loader[domain.ProfileRepository] {
	return pkglazy.New(func() (domain.ProfileRepository, error) {
		storage := pkgenv.Must(pkgenv.ParseWithDefault[string]("PROFILE_STORAGE", ProfileStoragePostgREST))
		switch storage {
		case ProfileStoragePostgREST:
			return postgrest.NewProfileRepository(
				httpClients.MustLoad().MustInitClient(commonhttp.DestinationSupabase),
				pkgenv.Must(pkgenv.Parse[string]("SUPABASE_ANON_KEY")),
			), nil
		case ProfileStorageSQL:
			dbMigrations.MustLoad().MustRegister(sqlaccount.Migrations)
			return sql.NewProfileRepository(db.MustLoad()), nil
		default:
			return nil, fmt.Errorf("unknown %s profile storage %s", domain.Name, storage)
		}
	})
}

func formRegistryProvider(
	profileRepo pkglazy.Loader[domain.ProfileRepository],
	clock pkglazy.Loader[pkgtime.Clock],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[form.Registry] {
	return pkglazy.New(func() (form.Registry, error) {
		return form.NewRegistry(
			profileRepo.MustLoad(),
			pkgenv.Must(pkgenv.ParseWithDefault[time.Duration]("FORM_STATE_TTL", form.DefaultStateTTL)),
			clock.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func accountServiceProvider(
	formRegistry pkglazy.Loader[form.Registry],
	profileRepo pkglazy.Loader[domain.ProfileRepository],
	permissions pkglazy.Loader[auth.PermissionService],
) pkglazy.Loader[service.Account] {
	return pkglazy.New(func() (service.Account, error) {
		return service.NewAccount(
			formRegistry.MustLoad(),
			profileRepo.MustLoad(),
			permissions.MustLoad(),
		), nil
	})
}
