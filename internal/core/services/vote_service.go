package services

import (
	"context"
	"errors"
	"time"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

type voteService struct {
	identities ports.IdentityProvider
	store      ports.UnitOfWork
}

func NewVoteService(identities ports.IdentityProvider, store ports.UnitOfWork) ports.VoteService {
	return &voteService{
		identities: identities,
		store:      store,
	}
}

func (s *voteService) CastVote(ctx context.Context, token string, projectID int64) (*domain.VoteResult, error) {
	identity := s.identities.Resolve(token)

	result := &domain.VoteResult{
		Token:       identity.Token,
		TokenIssued: identity.Issued,
		ExpiresAt:   identity.ExpiresAt,
	}

	if projectID <= 0 {
		return result, domain.ErrInvalidProjectID
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		if _, err := repos.Projects().GetByID(ctx, projectID); err != nil {
			return err
		}

		hasVoted, err := repos.Votes().HasVoted(ctx, identity.Token, projectID)
		if err != nil {
			return err
		}
		if hasVoted {
			return domain.ErrAlreadyVoted
		}

		vote := &domain.Vote{
			Identity:  identity.Token,
			ProjectID: projectID,
			CreatedAt: time.Now().UTC(),
		}
		if err := repos.Votes().SaveVote(ctx, vote); err != nil {
			return err
		}

		return repos.Projects().IncrementVotes(ctx, projectID)
	})
	if errors.Is(err, domain.ErrAlreadyVoted) {
		result.Reason = domain.ReasonAlreadyVoted
		return result, nil
	}
	if err != nil {
		return result, err
	}

	result.Success = true
	return result, nil
}

func (s *voteService) MyVotes(ctx context.Context, token string) ([]int64, error) {
	identity, ok := s.identities.Parse(token)
	if !ok {
		return []int64{}, nil
	}

	ids, err := s.store.Votes().ListProjectIDsByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
