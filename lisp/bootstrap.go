package lisp

// prelude defines the derived forms on top of the primitives.
// It is evaluated once for every global environment.
const prelude = `
(defmacro defun (name params . body)
  (setq name (lambda params . body)))

(defmacro or (a b) (if a t b))
(defmacro and (a b) (if a b nil))

(defun nullp (x) (eq x nil))
(defun not (x) (eq x nil))

(defun <= (a b) (if (< b a) nil t))
(defun > (a b) (< b a))
(defun >= (a b) (<= b a))

(defun - (a b) (+ a (car (neg b))))

(defun cadr (x) (car (cdr x)))
(defun cddr (x) (cdr (cdr x)))
`
