package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/pkg/cleanup"
)

type GroupsRepository struct {
	conn PgConnection
}

func NewGroupsRepo(cfg DBConfig) *GroupsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for groupsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GroupsRepository{
		conn: pool,
	}
}

func NewGroupsRepoWithConn(conn PgConnection) *GroupsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	return &GroupsRepository{
		conn: conn,
	}
}

func (groupsRepo *GroupsRepository) GetMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var exists bool
	row := groupsRepo.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1);`,
		groupID,
	)
	if err := row.Scan(&exists); err != nil {
		return nil, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("inspecting if group exists error: "+err.Error()))
	}
	if !exists {
		return nil, errorvalues.ErrGroupNotFound
	}
	rows, err := groupsRepo.conn.Query(
		ctx,
		`SELECT user_id FROM group_members WHERE group_id = $1;`,
		groupID,
	)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("getting group members error: "+err.Error()))
	}
	result := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var uid uuid.UUID
		if err := rows.Scan(&uid); err != nil {
			return nil, errors.New("group member row parsing error: " + err.Error())
		}
		result = append(result, uid)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected group member rows error: " + rows.Err().Error())
	}
	return result, nil
}
