// Package keys derives the partition/sort key strings and secondary-index
// projections addressing documents in the single DynamoDB table. All functions
// are pure; callers are responsible for passing non-empty identifiers.
package keys

import (
	"strings"
	"time"
)

// Key prefixes shared across entity types. Tenant isolation relies on the
// ORG# prefix plus authorization checks in the service layer.
const (
	OrgPrefix       = "ORG#"
	UserPrefix      = "USER#"
	MemberPrefix    = "MEMBER#"
	InvitePrefix    = "INVITE#"
	EmailPrefix     = "EMAIL#"
	LessonPrefix    = "LESSON#"
	OpenHousePrefix = "OPENHOUSE#"
	MarketPrefix    = "MARKET#"

	MetadataSK = "METADATA"
	ProfileSK  = "PROFILE"
	StatsSK    = "STATS"
)

// Primary identifies a document by its composite primary key.
type Primary struct {
	PK string
	SK string
}

// Projected extends Primary with the secondary-index attributes an item
// carries. Empty index fields are omitted from the stored item.
type Projected struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string
	GSI2PK string
	GSI2SK string
}

// Organization returns the key of an Organization document.
func Organization(orgID string) Primary {
	return Primary{
		PK: OrgPrefix + orgID,
		SK: MetadataSK,
	}
}

// TeamMember returns the keys of a membership record. The GSI1 projection
// supports "find all organizations for a user".
func TeamMember(orgID, userID string) Projected {
	return Projected{
		PK:     OrgPrefix + orgID,
		SK:     MemberPrefix + userID,
		GSI1PK: UserPrefix + userID,
		GSI1SK: OrgPrefix + orgID,
	}
}

// Invitation returns the keys of an invitation document. GSI1 supports
// time-ordered "find invitations by organization"; GSI2 supports "find
// invitations by email" for the pending-duplicate guard. Emails are
// lowercased so the projection is case-insensitive.
func Invitation(orgID, invitationID, email string, createdAt time.Time) Projected {
	return Projected{
		PK:     OrgPrefix + orgID,
		SK:     InvitePrefix + invitationID,
		GSI1PK: OrgPrefix + orgID,
		GSI1SK: InvitePrefix + createdAt.UTC().Format(time.RFC3339) + "#" + invitationID,
		GSI2PK: EmailPrefix + NormalizeEmail(email),
		GSI2SK: OrgPrefix + orgID + "#" + InvitePrefix + invitationID,
	}
}

// UserProfile returns the key of a user profile document.
func UserProfile(userID string) Primary {
	return Primary{
		PK: UserPrefix + userID,
		SK: ProfileSK,
	}
}

// LessonPlan returns the keys of a lesson plan document. The GSI1 projection
// supports listing an organization's lesson plans chronologically.
func LessonPlan(userID, orgID, planID string, createdAt time.Time) Projected {
	return Projected{
		PK:     UserPrefix + userID,
		SK:     LessonPrefix + planID,
		GSI1PK: OrgPrefix + orgID,
		GSI1SK: LessonPrefix + createdAt.UTC().Format(time.RFC3339) + "#" + planID,
	}
}

// OpenHouse returns the key of an open house session document.
func OpenHouse(orgID, sessionID string) Primary {
	return Primary{
		PK: OrgPrefix + orgID,
		SK: OpenHousePrefix + sessionID,
	}
}

// MarketStats returns the key of a cached market statistics document.
func MarketStats(areaCode string) Primary {
	return Primary{
		PK: MarketPrefix + strings.ToUpper(areaCode),
		SK: StatsSK,
	}
}

// NormalizeEmail canonicalizes an email address for key derivation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
