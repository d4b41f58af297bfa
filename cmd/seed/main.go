// Command seed imports a CSV dataset into an in-memory social graph and
// prints the resulting most-followed ranking. Profiles are signed up
// concurrently, so the import doubles as a shakedown of the coordinator's
// write serialization.
package main

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Bedlam343/socialgraph/config"
	"github.com/Bedlam343/socialgraph/internal/application"
	"github.com/Bedlam343/socialgraph/internal/domain"
	"github.com/Bedlam343/socialgraph/internal/infrastructure/memory"
	"github.com/Bedlam343/socialgraph/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	svc := application.NewService(memory.NewUserStore(), memory.NewFollowGraph(), logger)

	users, err := importProfiles(svc, cfg.ProfilesCSV, cfg.SeedWorkers, logger)
	if err != nil {
		log.Fatalf("failed to import profiles: %v", err)
	}
	edges, err := importEdges(svc, cfg.EdgesCSV, logger)
	if err != nil {
		log.Fatalf("failed to import edges: %v", err)
	}
	logger.WithFields(logrus.Fields{"users": users, "edges": edges}).Info("import finished")

	for i, entry := range svc.MostFollowed(cfg.RankLimit) {
		logger.WithFields(logrus.Fields{
			"rank":      i + 1,
			"username":  entry.Profile.Username,
			"followers": entry.Followers,
		}).Info("most followed")
	}
}

// importProfiles signs up every row of the profiles CSV. Rows that lose a
// uniqueness race or fail validation are logged and skipped; the import
// never aborts on a row-level conflict.
func importProfiles(svc *application.Service, path string, workers int, logger *logrus.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, err
	}
	col := columnIndex(header)
	for _, name := range []string{"name", "username", "email", "password"} {
		if _, ok := col[name]; !ok {
			return 0, errors.New("profiles csv is missing column " + name)
		}
	}

	var g errgroup.Group
	g.SetLimit(workers)
	var created atomic.Int64
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return int(created.Load()), err
		}
		in := application.SignUpInput{
			Name:     field(row, col, "name"),
			Username: field(row, col, "username"),
			Email:    field(row, col, "email"),
			Password: field(row, col, "password"),
			Bio:      field(row, col, "bio"),
			Location: field(row, col, "location"),
		}
		g.Go(func() error {
			if _, err := svc.SignUp(in); err != nil {
				if domain.IsConflict(err) || domain.IsValidation(err) {
					logger.WithError(err).WithField("username", in.Username).Warn("profile skipped")
					return nil
				}
				return err
			}
			created.Add(1)
			return nil
		})
	}
	err = g.Wait()
	return int(created.Load()), err
}

// importEdges replays the follows CSV (source,target usernames). Unknown
// usernames, self-follows and duplicate rows are logged and skipped.
func importEdges(svc *application.Service, path string, logger *logrus.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		return 0, err
	}

	created := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return created, err
		}
		if len(row) < 2 {
			continue
		}
		entry := logger.WithFields(logrus.Fields{"source": row[0], "target": row[1]})

		source, ok := svc.FindByUsername(row[0])
		if !ok {
			entry.Warn("edge skipped: unknown source")
			continue
		}
		target, ok := svc.FindByUsername(row[1])
		if !ok {
			entry.Warn("edge skipped: unknown target")
			continue
		}
		added, err := svc.Follow(source.ID, target.ID)
		if err != nil {
			entry.WithError(err).Warn("edge skipped")
			continue
		}
		if added {
			created++
		}
	}
	return created, nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
