// Package notifications delivers short user-facing messages such as the
// "registration successful" toast shown after a form is accepted.
//
// A Deliverer shows a Notification through one channel. Toast is the
// on-screen channel: it draws the notification on a host Surface and hides it
// after DefaultToastDelay. MultiDeliverer fans a notification out to several
// channels and logs the ones that fail; NoOpDeliverer discards everything.
//
// # Usage
//
//	toast, err := notifications.NewToast(surface,
//	    notifications.WithDelay(4*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	defer toast.Stop()
//
//	_ = toast.Deliver(ctx, notifications.New(
//	    notifications.TypeSuccess,
//	    "Success",
//	    "Registration Successful!",
//	))
//
// # Hide timers
//
// Each Deliver arms an independent hide timer. Two toasts shown less than the
// delay apart share one surface, so the first timer hides the second toast
// early. Pass WithRescheduleOnShow to cancel the previous timer instead.
package notifications
