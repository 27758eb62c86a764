package store

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/trentd187/golf-companion/internal/models"
)

// userLocked finds a known user by ID. Callers must hold s.mu.
func (s *Store) userLocked(id string) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// CurrentUser returns the user the app is running as.
func (s *Store) CurrentUser() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, _ := s.userLocked(s.currentUserID)
	return cloneUser(u)
}

// AllUsers returns every known user in directory order.
func (s *Store) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.users, cloneUser)
}

// UserByID looks up a known user.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userLocked(id)
	return cloneUser(u), ok
}

// SearchUsers returns users whose display name or username contains query,
// ignoring case, in directory order. An empty query matches everyone.
func (s *Store) SearchUsers(query string) []models.User {
	fold := cases.Fold()
	q := fold.String(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.User{}
	for _, u := range s.users {
		if strings.Contains(fold.String(u.DisplayName), q) || strings.Contains(fold.String(u.Username), q) {
			matches = append(matches, cloneUser(u))
		}
	}
	return matches
}

// Friends returns the friend list in the order friends were added.
func (s *Store) Friends() []models.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.friends, cloneFriend)
}

// AddFriend sends a friend request to the user with exactly this username.
// It returns false when no user has that username or the user is already on
// the friend list; otherwise a pending Friend entry is added.
func (s *Store) AddFriend(username string) bool {
	s.mu.Lock()
	defer s.unlock()

	var target *models.User
	for i := range s.users {
		if s.users[i].Username == username {
			target = &s.users[i]
			break
		}
	}
	if target == nil {
		return false
	}
	for _, f := range s.friends {
		if f.User.ID == target.ID {
			return false
		}
	}
	friend := models.Friend{
		ID:      s.newID(),
		User:    cloneUser(*target),
		Status:  models.FriendStatusPending,
		AddedAt: s.now(),
	}
	s.friends = append(s.friends, friend)

	s.logger.Info("friend request sent", "user_id", friend.User.ID)
	s.changedLocked(TopicSocial, "friend.added", friend.User.ID)
	return true
}

// RemoveFriend drops the friend entry for userID, if there is one.
func (s *Store) RemoveFriend(userID string) {
	s.mu.Lock()
	defer s.unlock()

	kept := s.friends[:0]
	removed := false
	for _, f := range s.friends {
		if f.User.ID == userID {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	s.friends = kept
	if removed {
		s.changedLocked(TopicSocial, "friend.removed", userID)
	}
}

// SendGameInvitation invites each known user in userIDs to play course on
// date. Unknown IDs are skipped. It returns the invitations it created.
func (s *Store) SendGameInvitation(userIDs []string, course string, date time.Time, message string) []models.GameInvitation {
	s.mu.Lock()
	defer s.unlock()

	from, _ := s.userLocked(s.currentUserID)
	created := []models.GameInvitation{}
	for _, id := range userIDs {
		if _, ok := s.userLocked(id); !ok {
			continue
		}
		inv := models.GameInvitation{
			ID:      s.newID(),
			From:    cloneUser(from),
			To:      id,
			Course:  course,
			Date:    date,
			Message: message,
			Status:  models.InvitationStatusPending,
		}
		s.invitations = append(s.invitations, inv)
		created = append(created, cloneInvitation(inv))
	}
	if len(created) > 0 {
		s.changedLocked(TopicSocial, "invitations.sent", "")
	}
	return created
}

// GameInvitations returns every invitation sent, oldest first.
func (s *Store) GameInvitations() []models.GameInvitation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.invitations, cloneInvitation)
}

// Leaderboard ranks the current user and every accepted friend by criteria.
// Average score ranks lowest first; driving distance and fairways hit rank
// highest first. Ties keep the current user ahead, then friends in the order
// they were added. The current user's numbers come from the player stats,
// friends' from their profiles.
func (s *Store) Leaderboard(criteria models.LeaderboardCriteria) []models.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	me, _ := s.userLocked(s.currentUserID)
	entries := []models.LeaderboardEntry{
		leaderboardEntry(me, criteria, models.UserStats{
			AverageScore:    s.playerStats.AverageScore,
			DrivingDistance: s.playerStats.DrivingDistance,
			FairwaysHit:     s.playerStats.FairwaysHit,
		}),
	}
	entries[0].IsCurrentUser = true

	for _, f := range s.friends {
		if f.Status != models.FriendStatusAccepted {
			continue
		}
		// Prefer the directory's copy; the friend entry is a snapshot from
		// when the friend was added.
		u, ok := s.userLocked(f.User.ID)
		if !ok {
			u = f.User
		}
		entries = append(entries, leaderboardEntry(u, criteria, u.Stats))
	}

	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		if criteria == models.LeaderboardByDistance || criteria == models.LeaderboardByFairways {
			return cmp.Compare(b.Value, a.Value)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func leaderboardEntry(u models.User, criteria models.LeaderboardCriteria, stats models.UserStats) models.LeaderboardEntry {
	e := models.LeaderboardEntry{
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		Username:    u.Username,
		Avatar:      u.Avatar,
		Handicap:    u.Handicap,
	}
	switch criteria {
	case models.LeaderboardByDistance:
		e.Value = float64(stats.DrivingDistance)
	case models.LeaderboardByFairways:
		e.Value = float64(stats.FairwaysHit)
	default:
		e.Value = stats.AverageScore
	}
	return e
}
