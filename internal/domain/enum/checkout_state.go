package enum

import "encoding/json"

// CheckoutState represents the state of the checkout controller
type CheckoutState int

const (
	CheckoutIdle       CheckoutState = 0
	CheckoutValidating CheckoutState = 1
	CheckoutSubmitting CheckoutState = 2
	CheckoutSucceeded  CheckoutState = 3
	CheckoutFailed     CheckoutState = 4
)

func (s CheckoutState) String() string {
	return [...]string{"Idle", "Validating", "Submitting", "Succeeded", "Failed"}[s]
}

func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CheckoutState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CheckoutState(i)
		return nil
	}
	switch str {
	case "Idle":
		*s = CheckoutIdle
	case "Validating":
		*s = CheckoutValidating
	case "Submitting":
		*s = CheckoutSubmitting
	case "Succeeded":
		*s = CheckoutSucceeded
	case "Failed":
		*s = CheckoutFailed
	}
	return nil
}
