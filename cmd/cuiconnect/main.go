// Command cuiconnect wires the campus community core together: it loads
// configuration, restores the user table from disk, and optionally seeds
// demo data. The interactive menu layer consumes the constructed services;
// it is not part of this binary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cuiconnect/cuiconnect/internal/auditlog"
	"github.com/cuiconnect/cuiconnect/internal/config"
	"github.com/cuiconnect/cuiconnect/internal/directory"
	"github.com/cuiconnect/cuiconnect/internal/notify"
	"github.com/cuiconnect/cuiconnect/internal/platform/flatfile"
	"github.com/cuiconnect/cuiconnect/internal/platform/logger"
	"github.com/cuiconnect/cuiconnect/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	seed := flag.Bool("seed", false, "seed demo users, societies, and groups")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Logging)
	log.Info("configuration loaded",
		"users_file", cfg.Storage.UsersFile,
		"log_level", cfg.Logging.Level)

	dir := directory.New()
	table := flatfile.NewUserTable(cfg.Storage.UsersFile, log)
	audit := auditlog.New(cfg.Storage.AuditFile, log)
	notifier := notify.New(log)

	users := service.NewUserService(dir, table, audit, log)
	memberships := service.NewMembershipService(notifier, audit, log)
	community := service.NewCommunityService(dir, notifier, audit, log)

	if err := table.Load(dir); err != nil {
		// Non-fatal: the session continues with whatever is in memory.
		log.Warn("user table load failed, starting with empty directory", "error", err)
	}

	if *seed {
		if err := seedDemoData(users, memberships, community); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Info("demo data seeded")
	}

	log.Info("directory ready",
		"users", len(dir.Users()),
		"students", len(dir.Students()),
		"societies", len(dir.Societies()),
		"groups", len(dir.Groups()),
		"events", len(dir.Events()),
		"active_users", dir.ActiveUserCount())
	return nil
}

// seedDemoData registers a small population exercising every role and
// both membership state machines, for quick manual testing.
func seedDemoData(users *service.UserService, memberships *service.MembershipService, community *service.CommunityService) error {
	ali, err := users.RegisterStudent("FA20-BCS-001", "Ali Khan", "ali.student@demo.com", "pass123",
		"Computer Science", 5, []string{"Java", "Python", "Database"})
	if err != nil {
		return err
	}
	sara, err := users.RegisterStudent("FA20-BCS-002", "Sara Ahmed", "sara.student@demo.com", "pass123",
		"Computer Science", 5, []string{"Web Development", "JavaScript", "React"})
	if err != nil {
		return err
	}
	admin, err := users.RegisterSocietyAdmin("SA001", "Dr. Farhan", "farhan.admin@demo.com", "admin123")
	if err != nil {
		return err
	}
	if _, err := users.RegisterDepartmentRep("DR001", "Dr. Sana", "sana.rep@demo.com", "dept123", "Computer Science"); err != nil {
		return err
	}
	if _, err := users.RegisterSystemAdmin("SYS001", "Admin", "admin.sys@demo.com", "sysadmin"); err != nil {
		return err
	}

	cs, err := community.CreateSociety(admin, "CS Society", "Computer Science Student Society", "Academic")
	if err != nil {
		return err
	}
	memberships.RequestJoinSociety(ali, cs)
	memberships.ApproveRequest(cs, ali)

	oop, err := community.CreateGroup(ali, "OOP Study Group", "Discuss OOP concepts and viva prep", "Academic")
	if err != nil {
		return err
	}
	memberships.JoinGroup(sara, oop)
	if _, err := community.PostGroupMessage(ali, oop, "Let's prepare the OOP viva together."); err != nil {
		return err
	}

	workshop, err := community.CreateSocietyEvent(cs, "Java Workshop", "Learn advanced Java programming",
		time.Now().AddDate(0, 0, 7), "CS Lab 5")
	if err != nil {
		return err
	}
	memberships.RSVPEvent(sara, workshop)

	slog.Debug("seed complete")
	return nil
}
